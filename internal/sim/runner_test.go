package sim_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/tiresim/internal/sim"
	"github.com/san-kum/tiresim/internal/tire"
)

// stubScenario produces a fixed single-point patch every tick.
type stubScenario struct {
	slip float32
	load float32
}

func (s *stubScenario) Name() string { return "stub" }

func (s *stubScenario) At(t, dt float64) sim.Tick {
	return sim.Tick{
		SlipRatio:    s.slip,
		VerticalLoad: s.load,
		Points:       []tire.Vec3{{}},
		Normals:      []tire.Vec3{{X: 1}},
		Forces:       []float32{s.load},
		Grips:        []float32{1},
		Samples:      []tire.PatchSample{{Weight: 1, Penetration: 0.03}},
	}
}

// poisonScenario injects NaN load after a few ticks.
type poisonScenario struct {
	stub     stubScenario
	poisonAt float64
}

func (p *poisonScenario) Name() string { return "poison" }

func (p *poisonScenario) At(t, dt float64) sim.Tick {
	tick := p.stub.At(t, dt)
	if t >= p.poisonAt {
		tick.Forces[0] = float32(math.NaN())
	}
	return tick
}

var _ = Describe("Runner", func() {
	var (
		cfg     sim.Config
		initial sim.TireState
	)

	BeforeEach(func() {
		cfg = sim.DefaultConfig()
		cfg.Dt = 0.01
		cfg.Duration = 1.0
		initial = sim.ColdTire(cfg)
	})

	It("rejects a non-positive timestep", func() {
		cfg.Dt = 0
		runner := sim.New(&stubScenario{slip: 0.1, load: 4200})
		_, err := runner.Run(context.Background(), initial, cfg)
		Expect(err).To(MatchError(sim.ErrInvalidConfig))
	})

	It("rejects a non-positive duration", func() {
		cfg.Duration = -1
		runner := sim.New(&stubScenario{slip: 0.1, load: 4200})
		_, err := runner.Run(context.Background(), initial, cfg)
		Expect(err).To(MatchError(sim.ErrInvalidConfig))
	})

	It("runs the expected number of ticks", func() {
		runner := sim.New(&stubScenario{slip: 0.1, load: 4200})
		result, err := runner.Run(context.Background(), initial, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.StepsTaken).To(Equal(100))
		Expect(result.Records).To(HaveLen(100))
	})

	It("accumulates wear and heat under slip", func() {
		runner := sim.New(&stubScenario{slip: 0.3, load: 4200})
		result, err := runner.Run(context.Background(), initial, cfg)
		Expect(err).NotTo(HaveOccurred())

		final := result.Final()
		Expect(final.Wear).To(BeNumerically(">", 0))
		Expect(final.SurfaceTemp).To(BeNumerically(">", cfg.AmbientTemp))
		Expect(final.CoreTemp).To(BeNumerically(">", cfg.AmbientTemp))
		// The surface leads the core during warm-up.
		Expect(final.SurfaceTemp).To(BeNumerically(">", final.CoreTemp))
	})

	It("reports full contact confidence for a solid patch", func() {
		runner := sim.New(&stubScenario{slip: 0.1, load: 4200})
		result, err := runner.Run(context.Background(), initial, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Records[0].Patch.ContactConfidence).To(BeNumerically("~", 1.0, 1e-6))
	})

	It("keeps the effective radius inside its bounds", func() {
		runner := sim.New(&stubScenario{slip: 0.1, load: 4200})
		result, err := runner.Run(context.Background(), initial, cfg)
		Expect(err).NotTo(HaveOccurred())
		for _, rec := range result.Records {
			Expect(rec.EffectiveRadius).To(BeNumerically(">=", cfg.MinEffectiveRadius))
			Expect(rec.EffectiveRadius).To(BeNumerically("<=", cfg.TireRadius))
		}
	})

	It("is deterministic across repeated runs", func() {
		run := func() *sim.Result {
			runner := sim.New(&stubScenario{slip: 0.2, load: 4500})
			result, err := runner.Run(context.Background(), initial, cfg)
			Expect(err).NotTo(HaveOccurred())
			return result
		}
		a, b := run(), run()
		Expect(a.Final()).To(Equal(b.Final()))
		Expect(a.Records[50].Contacts).To(Equal(b.Records[50].Contacts))
	})

	It("collects registered metrics", func() {
		runner := sim.New(&stubScenario{slip: 0.1, load: 4200})
		runner.AddMetric(&countingMetric{})
		result, err := runner.Run(context.Background(), initial, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Metrics).To(HaveKeyWithValue("count", 100.0))
	})

	It("notifies observers per tick", func() {
		runner := sim.New(&stubScenario{slip: 0.1, load: 4200})
		obs := &countingObserver{}
		runner.AddObserver(obs)
		_, err := runner.Run(context.Background(), initial, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(obs.ticks).To(Equal(100))
	})

	It("stops on context cancellation", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		runner := sim.New(&stubScenario{slip: 0.1, load: 4200})
		result, err := runner.Run(ctx, initial, cfg)
		Expect(err).To(MatchError(context.Canceled))
		Expect(result.StepsTaken).To(Equal(0))
	})

	It("stops and records an error when the state goes non-finite", func() {
		// NaN force propagates into the temperature nodes, which are
		// not defensively clamped the way wear is.
		runner := sim.New(&poisonScenario{stub: stubScenario{slip: 0.1, load: 4200}, poisonAt: 0.5})
		result, err := runner.Run(context.Background(), initial, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Errors).NotTo(BeEmpty())
		Expect(result.Errors[0]).To(MatchError(sim.ErrInvalidState))
		Expect(result.StepsTaken).To(BeNumerically("<", 100))
	})
})

var _ = Describe("Fleet", func() {
	It("runs every corner and keeps results independent", func() {
		cfg := sim.DefaultConfig()
		cfg.Dt = 0.01
		cfg.Duration = 0.5

		light := sim.New(&stubScenario{slip: 0.05, load: 3000})
		heavy := sim.New(&stubScenario{slip: 0.05, load: 6000})
		fleet := sim.NewFleet(light, heavy, light, heavy)

		results, err := fleet.Run(context.Background(), sim.ColdTire(cfg), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(4))
		// Heavier corners run hotter.
		Expect(results[1].Final().SurfaceTemp).To(BeNumerically(">", results[0].Final().SurfaceTemp))
	})
})

type countingMetric struct {
	count int
}

func (c *countingMetric) Name() string               { return "count" }
func (c *countingMetric) Observe(rec sim.TickRecord) { c.count++ }
func (c *countingMetric) Value() float64             { return float64(c.count) }
func (c *countingMetric) Reset()                     { c.count = 0 }

type countingObserver struct {
	ticks int
}

func (c *countingObserver) OnTick(rec sim.TickRecord) { c.ticks++ }
