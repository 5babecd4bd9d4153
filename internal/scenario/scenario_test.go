package scenario

import (
	"math"
	"testing"
)

func TestByName(t *testing.T) {
	for _, name := range Names() {
		sc, err := ByName(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if sc.Name() != name {
			t.Errorf("expected name %s, got %s", name, sc.Name())
		}
	}

	if _, err := ByName("bobsled"); err == nil {
		t.Error("expected error for unknown scenario")
	}
}

func TestBuildTickForceSum(t *testing.T) {
	tick := buildTick(4200, 0.05, 0.01, 1.0, DefaultPatchPoints)

	var sum float32
	for _, f := range tick.Forces {
		sum += f
	}
	// The cosine bias cancels over a full ring, so the shares sum to
	// the applied load.
	if math.Abs(float64(sum)-4200) > 0.5 {
		t.Errorf("expected forces to sum to load, got %f", sum)
	}
}

func TestBuildTickNormalsUnit(t *testing.T) {
	tick := buildTick(4200, 0.3, 0.1, 1.0, DefaultPatchPoints)
	for i, n := range tick.Normals {
		if math.Abs(float64(n.Length())-1) > 1e-5 {
			t.Errorf("normal %d not unit length: %f", i, n.Length())
		}
	}
}

func TestBuildTickZeroLoad(t *testing.T) {
	tick := buildTick(0, 0.1, 0, 1.0, DefaultPatchPoints)
	for i, f := range tick.Forces {
		if f != 0 {
			t.Errorf("force %d should be 0 with no load, got %f", i, f)
		}
	}
	for i, s := range tick.Samples {
		if s.Penetration != 0 {
			t.Errorf("sample %d should have no penetration, got %f", i, s.Penetration)
		}
	}
}

func TestScenariosDeterministic(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			a, _ := ByName(name)
			b, _ := ByName(name)
			for _, tm := range []float64{0, 0.5, 3.2, 17.9} {
				ta := a.At(tm, 0.01)
				tb := b.At(tm, 0.01)
				if ta.SlipRatio != tb.SlipRatio || ta.SlipAngle != tb.SlipAngle || ta.VerticalLoad != tb.VerticalLoad {
					t.Fatalf("t=%f: nondeterministic tick", tm)
				}
			}
		})
	}
}

func TestLaunchSlipDecays(t *testing.T) {
	l := NewLaunch()
	early := l.At(0, 0.01)
	late := l.At(10, 0.01)
	if late.SlipRatio >= early.SlipRatio {
		t.Errorf("slip should decay: %f vs %f", late.SlipRatio, early.SlipRatio)
	}
	if late.VerticalLoad >= early.VerticalLoad {
		t.Errorf("load transfer should fade: %f vs %f", late.VerticalLoad, early.VerticalLoad)
	}
}

func TestSweepRampsAndHolds(t *testing.T) {
	s := NewSweep()
	if slip := s.At(15, 0.01).SlipRatio; math.Abs(float64(slip)-0.25) > 1e-6 {
		t.Errorf("expected half ramp 0.25, got %f", slip)
	}
	if slip := s.At(100, 0.01).SlipRatio; slip != s.MaxSlip {
		t.Errorf("expected hold at %f, got %f", s.MaxSlip, slip)
	}
}
