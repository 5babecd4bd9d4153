package metrics

import "github.com/san-kum/tiresim/internal/sim"

// MeanConfidence averages the patch contact confidence over a run.
type MeanConfidence struct {
	name    string
	total   float64
	samples int
}

func NewMeanConfidence() *MeanConfidence {
	return &MeanConfidence{name: "mean_confidence"}
}

func (m *MeanConfidence) Name() string { return m.name }

func (m *MeanConfidence) Observe(rec sim.TickRecord) {
	m.total += float64(rec.Patch.ContactConfidence)
	m.samples++
}

func (m *MeanConfidence) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanConfidence) Reset() {
	m.total = 0
	m.samples = 0
}

// GripReserve averages the force-weighted grip figure. Values near the
// nominal grip mean the patch is loaded evenly; a sagging reserve
// flags grip lost to skewed loading.
type GripReserve struct {
	name    string
	total   float64
	samples int
}

func NewGripReserve() *GripReserve {
	return &GripReserve{name: "grip_reserve"}
}

func (g *GripReserve) Name() string { return g.name }

func (g *GripReserve) Observe(rec sim.TickRecord) {
	g.total += float64(rec.Contacts.WeightedGrip)
	g.samples++
}

func (g *GripReserve) Value() float64 {
	if g.samples == 0 {
		return 0
	}
	return g.total / float64(g.samples)
}

func (g *GripReserve) Reset() {
	g.total = 0
	g.samples = 0
}
