package sim

import (
	"math"

	"github.com/san-kum/tiresim/internal/tire"
)

// TireState is the per-tick state the caller carries between ticks.
type TireState struct {
	Wear        float32
	SurfaceTemp float32
	CoreTemp    float32
}

func (s TireState) IsValid() bool {
	for _, v := range []float32{s.Wear, s.SurfaceTemp, s.CoreTemp} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Tick is one scenario sample: slip and load plus the contact geometry
// and statistical samples the core aggregates.
type Tick struct {
	SlipRatio    float32
	SlipAngle    float32
	VerticalLoad float32
	Points       []tire.Vec3
	Normals      []tire.Vec3
	Forces       []float32
	Grips        []float32
	Samples      []tire.PatchSample
}

// Scenario produces the tick inputs for a simulated maneuver.
type Scenario interface {
	Name() string
	At(t, dt float64) Tick
}

// TickRecord is everything known about one completed tick.
type TickRecord struct {
	Step            int
	Time            float64
	Input           Tick
	Patch           tire.PatchAggregate
	Contacts        tire.ContactAggregate
	EffectiveRadius float32
	State           TireState
}

type Metric interface {
	Name() string
	Observe(rec TickRecord)
	Value() float64
	Reset()
}

type Observer interface {
	OnTick(rec TickRecord)
}

type Config struct {
	Dt       float64
	Duration float64

	TireRadius         float32
	MinEffectiveRadius float32
	Stiffness          float32
	BaseWearRate       float32
	BaseHeatGeneration float32
	CoolingRate        float32
	AmbientTemp        float32

	Conventions   tire.Conventions
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Dt:                 0.01,
		Duration:           60.0,
		TireRadius:         0.34,
		MinEffectiveRadius: 0.27,
		Stiffness:          120000,
		BaseWearRate:       0.0004,
		BaseHeatGeneration: 90,
		CoolingRate:        0.35,
		AmbientTemp:        25,
		Conventions:        tire.DefaultConventions(),
		ValidateState:      true,
	}
}

// ColdTire is the canonical initial state: no wear, both nodes at
// ambient temperature.
func ColdTire(cfg Config) TireState {
	return TireState{SurfaceTemp: cfg.AmbientTemp, CoreTemp: cfg.AmbientTemp}
}

type Result struct {
	Records    []TickRecord
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

// Final returns the last recorded tire state, or the zero state when
// the run produced no ticks.
func (r *Result) Final() TireState {
	if len(r.Records) == 0 {
		return TireState{}
	}
	return r.Records[len(r.Records)-1].State
}
