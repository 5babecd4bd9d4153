package tire

import (
	"math"
	"testing"
)

func TestAggregatePatchEmpty(t *testing.T) {
	agg := AggregatePatch(nil)
	if agg != (PatchAggregate{}) {
		t.Errorf("expected zero aggregate, got %+v", agg)
	}
}

func TestAggregatePatchConfidence(t *testing.T) {
	agg := AggregatePatch([]PatchSample{
		{Weight: 1, Penetration: 0.02, SlipX: 0.1},
		{Weight: 1, Penetration: 0.00, SlipX: 0.2, SlipY: 0.1},
	})

	if math.Abs(float64(agg.ContactConfidence)-0.5) > 1e-6 {
		t.Errorf("expected confidence 0.5, got %f", agg.ContactConfidence)
	}
	if agg.PenetrationMax < agg.PenetrationAvg {
		t.Errorf("max %f below avg %f", agg.PenetrationMax, agg.PenetrationAvg)
	}
}

func TestAggregatePatchMaxIgnoresWeight(t *testing.T) {
	// The deepest sample carries almost no weight; the max must still
	// report it while the average barely moves.
	agg := AggregatePatch([]PatchSample{
		{Weight: 100, Penetration: 0.01},
		{Weight: 1e-4, Penetration: 0.09},
	})

	if agg.PenetrationMax != 0.09 {
		t.Errorf("expected max 0.09, got %f", agg.PenetrationMax)
	}
	if agg.PenetrationAvg > 0.011 {
		t.Errorf("average should stay near 0.01, got %f", agg.PenetrationAvg)
	}
}

func TestAggregatePatchThresholdDrivesConfidenceToZero(t *testing.T) {
	conv := DefaultConventions()
	conv.ContactPenetrationThreshold = 0.03

	agg := AggregatePatchWith([]PatchSample{
		{Weight: 1, Penetration: 0.02},
		{Weight: 2, Penetration: 0.01},
	}, conv)

	if agg.ContactConfidence != 0 {
		t.Errorf("expected confidence 0, got %f", agg.ContactConfidence)
	}
}

func TestAggregatePatchWeightedAverages(t *testing.T) {
	agg := AggregatePatch([]PatchSample{
		{Weight: 3, Penetration: 0.02, SlipX: 0.1, SlipY: -0.2},
		{Weight: 1, Penetration: 0.04, SlipX: 0.5, SlipY: 0.2},
	})

	tests := []struct {
		name     string
		got      float32
		expected float32
	}{
		{"penetration_avg", agg.PenetrationAvg, 0.75*0.02 + 0.25*0.04},
		{"slip_x_avg", agg.SlipXAvg, 0.75*0.1 + 0.25*0.5},
		{"slip_y_avg", agg.SlipYAvg, 0.75*-0.2 + 0.25*0.2},
	}
	for _, tt := range tests {
		if math.Abs(float64(tt.got-tt.expected)) > 1e-6 {
			t.Errorf("%s: expected %f, got %f", tt.name, tt.expected, tt.got)
		}
	}
}

func TestAggregatePatchZeroWeightSamples(t *testing.T) {
	agg := AggregatePatch([]PatchSample{
		{Weight: 0, Penetration: 0.05},
		{Weight: 0, Penetration: 0.03},
	})

	if agg.ContactConfidence != 0 {
		t.Errorf("expected confidence 0 for degenerate weights, got %f", agg.ContactConfidence)
	}
	if agg.PenetrationAvg != 0 {
		t.Errorf("expected avg 0 for degenerate weights, got %f", agg.PenetrationAvg)
	}
	// Max is unweighted and still sees the deepest sample.
	if agg.PenetrationMax != 0.05 {
		t.Errorf("expected max 0.05, got %f", agg.PenetrationMax)
	}
}
