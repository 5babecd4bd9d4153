package tire

// EffectiveRadius derives the compressed rolling radius from vertical
// load and stiffness using DefaultConventions.
func EffectiveRadius(tireRadius, minEffectiveRadius, verticalLoad, stiffness float32) float32 {
	return EffectiveRadiusWith(tireRadius, minEffectiveRadius, verticalLoad, stiffness, DefaultConventions())
}

// EffectiveRadiusWith floors stiffness at MinStiffness, bounds the
// compression to [0, tireRadius] and clamps the result to
// [minEffectiveRadius, tireRadius]. A non-positive tire radius is
// degenerate and returns 0.
func EffectiveRadiusWith(tireRadius, minEffectiveRadius, verticalLoad, stiffness float32, conv Conventions) float32 {
	if tireRadius <= 0 {
		return 0
	}

	k := stiffness
	if k < conv.MinStiffness {
		k = conv.MinStiffness
	}
	load := verticalLoad
	if load < 0 {
		load = 0
	}

	compression := load / k
	if compression > tireRadius {
		compression = tireRadius
	}

	r := tireRadius - compression
	if r < minEffectiveRadius {
		r = minEffectiveRadius
	}
	if r > tireRadius {
		r = tireRadius
	}
	return r
}
