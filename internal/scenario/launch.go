package scenario

import (
	"math"

	"github.com/san-kum/tiresim/internal/sim"
)

// Launch is a standing start: high initial slip ratio decaying
// exponentially as the tire hooks up, with load shifted onto the
// driven axle early in the run.
type Launch struct {
	Load         float32
	PeakSlip     float32
	SlipDecay    float64
	TransferGain float32
	Grip         float32
	Points       int
}

func NewLaunch() *Launch {
	return &Launch{
		Load:         DefaultLoad,
		PeakSlip:     0.35,
		SlipDecay:    0.6,
		TransferGain: 0.25,
		Grip:         DefaultGrip,
		Points:       DefaultPatchPoints,
	}
}

func (l *Launch) Name() string { return "launch" }

func (l *Launch) At(t, dt float64) sim.Tick {
	decay := float32(math.Exp(-l.SlipDecay * t))
	slip := l.PeakSlip * decay
	load := l.Load * (1 + l.TransferGain*decay)
	return buildTick(load, slip, 0, l.Grip, l.Points)
}
