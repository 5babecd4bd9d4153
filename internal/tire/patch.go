package tire

// PatchSample is one contact observation. Weight is an unnormalized
// importance score, for example from sensor confidence.
type PatchSample struct {
	Weight      float32
	Penetration float32
	SlipX       float32
	SlipY       float32
}

// PatchAggregate is the per-tick summary of a set of samples.
// ContactConfidence lies in [0, 1]; PenetrationMax reports the worst
// single sample regardless of its weight.
type PatchAggregate struct {
	ContactConfidence float32
	PenetrationAvg    float32
	PenetrationMax    float32
	SlipXAvg          float32
	SlipYAvg          float32
}

// AggregatePatch summarizes samples using DefaultConventions.
func AggregatePatch(samples []PatchSample) PatchAggregate {
	return AggregatePatchWith(samples, DefaultConventions())
}

// AggregatePatchWith produces confidence-weighted averages over the
// samples. Confidence is the share of the total normalized weight held
// by samples whose penetration exceeds the contact threshold, so
// marginal contact is distinguishable from solid contact. An empty
// sample list yields a zero aggregate.
func AggregatePatchWith(samples []PatchSample, conv Conventions) PatchAggregate {
	if len(samples) == 0 {
		return PatchAggregate{}
	}

	raw := make([]float32, len(samples))
	for i, s := range samples {
		raw[i] = s.Weight
	}
	weights := NormalizeWeightsWith(raw, conv)

	var agg PatchAggregate
	for i, s := range samples {
		w := weights[i]
		if s.Penetration > conv.ContactPenetrationThreshold {
			agg.ContactConfidence += w
		}
		agg.PenetrationAvg += s.Penetration * w
		if s.Penetration > agg.PenetrationMax {
			agg.PenetrationMax = s.Penetration
		}
		agg.SlipXAvg += s.SlipX * w
		agg.SlipYAvg += s.SlipY * w
	}

	// Guard against floating-point drift in the weight sum.
	if agg.ContactConfidence > 1 {
		agg.ContactConfidence = 1
	}
	if agg.ContactConfidence < 0 {
		agg.ContactConfidence = 0
	}
	return agg
}
