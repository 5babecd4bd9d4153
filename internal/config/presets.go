package config

var Presets = map[string]map[string]*Config{
	"cruise": {
		"highway": {
			Scenario: "cruise", Dt: 0.01, Duration: 300.0,
			Tire: TireConfig{Radius: 0.34, MinEffectiveRadius: 0.27, Stiffness: 120000, BaseWearRate: 0.0002, BaseHeatGeneration: 60, CoolingRate: 0.5, AmbientTemp: 25},
		},
		"cold": {
			Scenario: "cruise", Dt: 0.01, Duration: 120.0,
			Tire: TireConfig{Radius: 0.34, MinEffectiveRadius: 0.27, Stiffness: 120000, BaseWearRate: 0.0002, BaseHeatGeneration: 60, CoolingRate: 0.8, AmbientTemp: -5},
		},
	},
	"launch": {
		"dragstrip": {
			Scenario: "launch", Dt: 0.005, Duration: 12.0,
			Tire: TireConfig{Radius: 0.36, MinEffectiveRadius: 0.28, Stiffness: 100000, BaseWearRate: 0.002, BaseHeatGeneration: 220, CoolingRate: 0.25, AmbientTemp: 30},
		},
		"street": {
			Scenario: "launch", Dt: 0.01, Duration: 8.0,
			Tire: TireConfig{Radius: 0.34, MinEffectiveRadius: 0.27, Stiffness: 120000, BaseWearRate: 0.001, BaseHeatGeneration: 140, CoolingRate: 0.35, AmbientTemp: 25},
		},
	},
	"corner": {
		"track": {
			Scenario: "corner", Dt: 0.01, Duration: 90.0,
			Tire: TireConfig{Radius: 0.33, MinEffectiveRadius: 0.26, Stiffness: 140000, BaseWearRate: 0.0008, BaseHeatGeneration: 160, CoolingRate: 0.4, AmbientTemp: 28},
		},
		"autocross": {
			Scenario: "corner", Dt: 0.005, Duration: 45.0,
			Tire: TireConfig{Radius: 0.31, MinEffectiveRadius: 0.25, Stiffness: 150000, BaseWearRate: 0.0012, BaseHeatGeneration: 190, CoolingRate: 0.3, AmbientTemp: 25},
		},
	},
	"sweep": {
		"characterize": {
			Scenario: "sweep", Dt: 0.01, Duration: 60.0,
			Tire: TireConfig{Radius: 0.34, MinEffectiveRadius: 0.27, Stiffness: 120000, BaseWearRate: 0.0004, BaseHeatGeneration: 90, CoolingRate: 0.35, AmbientTemp: 25},
		},
	},
}

func GetPreset(scenario, name string) *Config {
	byName, ok := Presets[scenario]
	if !ok {
		return nil
	}
	cfg, ok := byName[name]
	if !ok {
		return nil
	}
	out := *cfg
	if out.Conventions == (ConventionsConfig{}) {
		out.Conventions = DefaultConfig().Conventions
	}
	return &out
}

func ListPresets(scenario string) []string {
	byName, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	return names
}
