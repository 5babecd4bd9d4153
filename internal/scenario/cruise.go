package scenario

import "github.com/san-kum/tiresim/internal/sim"

// Cruise is steady highway rolling: constant load, a small constant
// slip ratio from drive torque, no slip angle.
type Cruise struct {
	Load      float32
	SlipRatio float32
	Grip      float32
	Points    int
}

func NewCruise() *Cruise {
	return &Cruise{
		Load:      DefaultLoad,
		SlipRatio: 0.01,
		Grip:      DefaultGrip,
		Points:    DefaultPatchPoints,
	}
}

func (c *Cruise) Name() string { return "cruise" }

func (c *Cruise) At(t, dt float64) sim.Tick {
	return buildTick(c.Load, c.SlipRatio, 0, c.Grip, c.Points)
}
