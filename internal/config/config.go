package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/tiresim/internal/sim"
	"github.com/san-kum/tiresim/internal/tire"
)

const (
	DefaultDt       = 0.01
	DefaultDuration = 60.0

	DefaultTireRadius  = 0.34
	DefaultMinRadius   = 0.27
	DefaultStiffness   = 120000.0
	DefaultWearRate    = 0.0004
	DefaultHeatRate    = 90.0
	DefaultCoolingRate = 0.35
	DefaultAmbientTemp = 25.0
)

type Config struct {
	Scenario string  `yaml:"scenario"`
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`

	Tire        TireConfig        `yaml:"tire"`
	Conventions ConventionsConfig `yaml:"conventions"`
}

type TireConfig struct {
	Radius             float32 `yaml:"radius"`
	MinEffectiveRadius float32 `yaml:"min_effective_radius"`
	Stiffness          float32 `yaml:"stiffness"`
	BaseWearRate       float32 `yaml:"base_wear_rate"`
	BaseHeatGeneration float32 `yaml:"base_heat_generation"`
	CoolingRate        float32 `yaml:"cooling_rate"`
	AmbientTemp        float32 `yaml:"ambient_temp"`
}

type ConventionsConfig struct {
	Epsilon                     float32 `yaml:"epsilon"`
	MinStiffness                float32 `yaml:"min_stiffness"`
	MinPositiveWeight           float32 `yaml:"min_positive_weight"`
	ContactPenetrationThreshold float32 `yaml:"contact_penetration_threshold"`
}

func DefaultConfig() *Config {
	conv := tire.DefaultConventions()
	return &Config{
		Scenario: "cruise",
		Dt:       DefaultDt,
		Duration: DefaultDuration,
		Tire: TireConfig{
			Radius:             DefaultTireRadius,
			MinEffectiveRadius: DefaultMinRadius,
			Stiffness:          DefaultStiffness,
			BaseWearRate:       DefaultWearRate,
			BaseHeatGeneration: DefaultHeatRate,
			CoolingRate:        DefaultCoolingRate,
			AmbientTemp:        DefaultAmbientTemp,
		},
		Conventions: ConventionsConfig{
			Epsilon:                     conv.Epsilon,
			MinStiffness:                conv.MinStiffness,
			MinPositiveWeight:           conv.MinPositiveWeight,
			ContactPenetrationThreshold: conv.ContactPenetrationThreshold,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SimConfig converts the file representation into the runner's config.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Dt:                 c.Dt,
		Duration:           c.Duration,
		TireRadius:         c.Tire.Radius,
		MinEffectiveRadius: c.Tire.MinEffectiveRadius,
		Stiffness:          c.Tire.Stiffness,
		BaseWearRate:       c.Tire.BaseWearRate,
		BaseHeatGeneration: c.Tire.BaseHeatGeneration,
		CoolingRate:        c.Tire.CoolingRate,
		AmbientTemp:        c.Tire.AmbientTemp,
		Conventions: tire.Conventions{
			Epsilon:                     c.Conventions.Epsilon,
			MinStiffness:                c.Conventions.MinStiffness,
			MinPositiveWeight:           c.Conventions.MinPositiveWeight,
			ContactPenetrationThreshold: c.Conventions.ContactPenetrationThreshold,
		},
		ValidateState: true,
	}
}
