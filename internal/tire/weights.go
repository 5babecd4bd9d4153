package tire

// NormalizeWeights maps arbitrary non-negative contributions onto a
// distribution summing to 1 using DefaultConventions.
func NormalizeWeights(weights []float32) []float32 {
	return NormalizeWeightsWith(weights, DefaultConventions())
}

// NormalizeWeightsWith divides each weight strictly above
// MinPositiveWeight by the sum of all such weights; everything else
// becomes 0. When the qualifying sum is at most Epsilon the whole
// output is zero, so the result never contains NaN or Inf and always
// sums to 0 or 1.
func NormalizeWeightsWith(weights []float32, conv Conventions) []float32 {
	out := make([]float32, len(weights))

	var sum float32
	for _, w := range weights {
		if w > conv.MinPositiveWeight {
			sum += w
		}
	}
	if sum <= conv.Epsilon {
		return out
	}

	for i, w := range weights {
		if w > conv.MinPositiveWeight {
			out[i] = w / sum
		}
	}
	return out
}
