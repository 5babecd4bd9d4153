package scenario

import (
	"math"

	"github.com/san-kum/tiresim/internal/sim"
)

// Corner is a repeating left-right sweep: sinusoidal slip angle with
// load transfer following the lateral demand.
type Corner struct {
	Load         float32
	PeakAngle    float32
	Period       float64
	TransferGain float32
	Grip         float32
	Points       int
}

func NewCorner() *Corner {
	return &Corner{
		Load:         DefaultLoad,
		PeakAngle:    0.12,
		Period:       8.0,
		TransferGain: 0.3,
		Grip:         DefaultGrip,
		Points:       DefaultPatchPoints,
	}
}

func (c *Corner) Name() string { return "corner" }

func (c *Corner) At(t, dt float64) sim.Tick {
	phase := 2 * math.Pi * t / c.Period
	angle := c.PeakAngle * float32(math.Sin(phase))
	load := c.Load * (1 + c.TransferGain*float32(math.Abs(math.Sin(phase))))
	return buildTick(load, 0.02, angle, c.Grip, c.Points)
}
