package scenario

import "github.com/san-kum/tiresim/internal/sim"

// Sweep ramps the slip ratio linearly from zero to MaxSlip over the
// ramp time, then holds. Used to characterize wear rate against slip.
type Sweep struct {
	Load     float32
	MaxSlip  float32
	RampTime float64
	Grip     float32
	Points   int
}

func NewSweep() *Sweep {
	return &Sweep{
		Load:     DefaultLoad,
		MaxSlip:  0.5,
		RampTime: 30.0,
		Grip:     DefaultGrip,
		Points:   DefaultPatchPoints,
	}
}

func (s *Sweep) Name() string { return "sweep" }

func (s *Sweep) At(t, dt float64) sim.Tick {
	slip := s.MaxSlip
	if t < s.RampTime {
		slip = s.MaxSlip * float32(t/s.RampTime)
	}
	return buildTick(s.Load, slip, 0, s.Grip, s.Points)
}
