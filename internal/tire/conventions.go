package tire

// Conventions bundles the numerical guards shared by the patch
// computations. A Conventions value is never mutated by a call.
type Conventions struct {
	Epsilon                     float32
	MinStiffness                float32
	MinPositiveWeight           float32
	ContactPenetrationThreshold float32
}

// DefaultConventions returns the baseline guards used when a caller
// does not supply its own.
func DefaultConventions() Conventions {
	return Conventions{
		Epsilon:                     1e-6,
		MinStiffness:                1e-4,
		MinPositiveWeight:           0,
		ContactPenetrationThreshold: 0,
	}
}
