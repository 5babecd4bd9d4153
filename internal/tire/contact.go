package tire

// ContactAggregate summarizes a discrete contact point set about a
// caller-supplied origin.
type ContactAggregate struct {
	TotalForce      Vec3
	TotalTorque     Vec3
	AveragePosition Vec3
	ContactArea     float32
	MaxPressure     float32
	WeightedGrip    float32
}

// AggregateContacts composes per-contact normal forces into a total
// force, a torque about origin, a centroid, a contact area estimate and
// a force-weighted grip figure. Points, normals, forces and grips are
// parallel slices of length count; a nil slice or a count of 0 returns
// a zero aggregate rather than failing, since this runs on a per-tick
// boundary where a caller error must degrade, not halt.
//
// Grip attenuates only the components orthogonal to the normal's X
// axis: the X axis carries the vertical load and passes through
// unscaled, while the shear plane is scaled by grip.
func AggregateContacts(points, normals []Vec3, forces, grips []float32, count int, origin Vec3, stiffness float32) ContactAggregate {
	if count == 0 || points == nil || normals == nil || forces == nil || grips == nil {
		return ContactAggregate{}
	}

	div := stiffness
	if div < 1 {
		div = 1
	}

	var agg ContactAggregate
	var centroid Vec3
	for i := 0; i < count; i++ {
		n, f, g := normals[i], forces[i], grips[i]
		agg.TotalForce = agg.TotalForce.Add(Vec3{n.X * f, n.Y * f * g, n.Z * f * g})
		centroid = centroid.Add(points[i])
		agg.ContactArea += f / div
		if f > agg.MaxPressure {
			agg.MaxPressure = f
		}
	}
	agg.AveragePosition = centroid.Scale(1 / float32(count))

	for i := 0; i < count; i++ {
		arm := points[i].Sub(origin)
		shear := normals[i].Scale(forces[i] * grips[i])
		agg.TotalTorque = agg.TotalTorque.Add(arm.Cross(shear))
	}

	total := agg.TotalForce.Length()
	if total == 0 {
		// No force information, assume nominal grip.
		agg.WeightedGrip = 1
		return agg
	}
	for i := 0; i < count; i++ {
		agg.WeightedGrip += grips[i] * (forces[i] / total)
	}
	return agg
}
