package metrics

import "github.com/san-kum/tiresim/internal/sim"

// PeakSurfaceTemp tracks the hottest surface temperature seen during a
// run.
type PeakSurfaceTemp struct {
	name string
	peak float64
	seen bool
}

func NewPeakSurfaceTemp() *PeakSurfaceTemp {
	return &PeakSurfaceTemp{name: "peak_surface_temp"}
}

func (p *PeakSurfaceTemp) Name() string { return p.name }

func (p *PeakSurfaceTemp) Observe(rec sim.TickRecord) {
	temp := float64(rec.State.SurfaceTemp)
	if !p.seen || temp > p.peak {
		p.peak = temp
		p.seen = true
	}
}

func (p *PeakSurfaceTemp) Value() float64 {
	return p.peak
}

func (p *PeakSurfaceTemp) Reset() {
	p.peak = 0
	p.seen = false
}

// CoreLag averages the surface-minus-core temperature gap, a measure of
// how far the core trails the surface during transients.
type CoreLag struct {
	name    string
	total   float64
	samples int
}

func NewCoreLag() *CoreLag {
	return &CoreLag{name: "core_lag"}
}

func (c *CoreLag) Name() string { return c.name }

func (c *CoreLag) Observe(rec sim.TickRecord) {
	c.total += float64(rec.State.SurfaceTemp - rec.State.CoreTemp)
	c.samples++
}

func (c *CoreLag) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.total / float64(c.samples)
}

func (c *CoreLag) Reset() {
	c.total = 0
	c.samples = 0
}
