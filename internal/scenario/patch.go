package scenario

import (
	"math"

	"github.com/san-kum/tiresim/internal/sim"
	"github.com/san-kum/tiresim/internal/tire"
)

const (
	DefaultPatchPoints = 6
	DefaultLoad        = 4200.0
	DefaultGrip        = 1.0

	patchHalfLength = 0.08
	patchHalfWidth  = 0.10
	penetrationRef  = 120000.0
)

// buildTick synthesizes a contact patch under the given load: a ring
// of contact points on the road plane (X is the load axis), normals
// tilted slightly by slip, forces biased toward the patch center, and
// matching statistical samples. Deterministic in all arguments.
func buildTick(load, slipRatio, slipAngle, grip float32, n int) sim.Tick {
	if n <= 0 {
		n = DefaultPatchPoints
	}

	tick := sim.Tick{
		SlipRatio:    slipRatio,
		SlipAngle:    slipAngle,
		VerticalLoad: load,
		Points:       make([]tire.Vec3, n),
		Normals:      make([]tire.Vec3, n),
		Forces:       make([]float32, n),
		Grips:        make([]float32, n),
		Samples:      make([]tire.PatchSample, n),
	}
	if load <= 0 {
		return tick
	}

	basePenetration := load / penetrationRef
	for i := 0; i < n; i++ {
		phase := 2 * math.Pi * float64(i) / float64(n)
		cos := float32(math.Cos(phase))
		sin := float32(math.Sin(phase))

		tick.Points[i] = tire.Vec3{
			Y: patchHalfLength * cos,
			Z: patchHalfWidth * sin,
		}

		// Slip tilts the normal into the shear plane.
		normal := tire.Vec3{X: 1, Y: -0.2 * slipRatio, Z: -0.2 * slipAngle}
		tick.Normals[i] = normal.Scale(1 / normal.Length())

		// Center-weighted pressure fall-off toward the leading and
		// trailing edges.
		share := (1 + 0.5*cos) / float32(n)
		tick.Forces[i] = load * share
		tick.Grips[i] = grip

		tick.Samples[i] = tire.PatchSample{
			Weight:      share,
			Penetration: basePenetration * (1 + 0.5*cos),
			SlipX:       slipRatio,
			SlipY:       slipAngle,
		}
	}
	return tick
}
