package sim

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/san-kum/tiresim/internal/tire"
)

// Runner advances one tire through a scenario, one tick at a time.
type Runner struct {
	scenario  Scenario
	metrics   []Metric
	observers []Observer
	log       zerolog.Logger
}

func New(scenario Scenario) *Runner {
	return &Runner{
		scenario:  scenario,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		log:       zerolog.Nop(),
	}
}

func (r *Runner) AddMetric(m Metric)         { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer)     { r.observers = append(r.observers, o) }
func (r *Runner) SetLogger(l zerolog.Logger) { r.log = l }

// Run executes the tick loop: aggregate the scenario's contact state,
// derive the effective radius, step wear and temperature, and feed the
// result back as the next tick's state.
func (r *Runner) Run(ctx context.Context, initial TireState, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Records: make([]TickRecord, 0, steps),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	r.log.Info().
		Str("scenario", r.scenario.Name()).
		Float64("dt", cfg.Dt).
		Float64("duration", cfg.Duration).
		Msg("run started")

	state := initial
	t := 0.0

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		input := r.scenario.At(t, cfg.Dt)
		rec := StepTick(i, t, input, state, cfg)
		state = rec.State
		t = rec.Time

		if cfg.ValidateState && !state.IsValid() {
			err := &TickError{Step: i, Time: t, Wrapped: ErrInvalidState}
			result.Errors = append(result.Errors, err)
			r.log.Error().Int("tick", i).Float64("t", t).Msg("invalid tire state, stopping")
			break
		}

		for _, m := range r.metrics {
			m.Observe(rec)
		}
		for _, obs := range r.observers {
			obs.OnTick(rec)
		}

		result.Records = append(result.Records, rec)
		result.StepsTaken++
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	final := result.Final()
	r.log.Info().
		Int("ticks", result.StepsTaken).
		Float32("wear", final.Wear).
		Float32("surface_temp", final.SurfaceTemp).
		Float32("core_temp", final.CoreTemp).
		Msg("run finished")

	return result, nil
}

// StepTick aggregates one scenario tick through the core and advances
// the tire state by cfg.Dt.
func StepTick(step int, t float64, input Tick, state TireState, cfg Config) TickRecord {
	patch := tire.AggregatePatchWith(input.Samples, cfg.Conventions)
	eff := tire.EffectiveRadiusWith(cfg.TireRadius, cfg.MinEffectiveRadius, input.VerticalLoad, cfg.Stiffness, cfg.Conventions)

	// Hub sits one effective radius above the patch along the load
	// axis.
	origin := tire.Vec3{X: eff}
	contacts := tire.AggregateContacts(input.Points, input.Normals, input.Forces, input.Grips, len(input.Points), origin, cfg.Stiffness)

	out := tire.StepWearAndTemperature(tire.WearThermalInput{
		SlipRatio:           input.SlipRatio,
		SlipAngle:           input.SlipAngle,
		PeakPressure:        contacts.MaxPressure,
		TotalForceMagnitude: contacts.TotalForce.Length(),
		CurrentWear:         state.Wear,
		BaseWearRate:        cfg.BaseWearRate,
		BaseHeatGeneration:  cfg.BaseHeatGeneration,
		CoolingRate:         cfg.CoolingRate,
		AmbientTemp:         cfg.AmbientTemp,
		SurfaceTemp:         state.SurfaceTemp,
		CoreTemp:            state.CoreTemp,
		Delta:               float32(cfg.Dt),
	})

	return TickRecord{
		Step:            step,
		Time:            t + cfg.Dt,
		Input:           input,
		Patch:           patch,
		Contacts:        contacts,
		EffectiveRadius: eff,
		State:           TireState{Wear: out.Wear, SurfaceTemp: out.SurfaceTemp, CoreTemp: out.CoreTemp},
	}
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, cfg.Duration)
	}
	return nil
}
