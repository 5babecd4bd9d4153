package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Scenario != "cruise" {
		t.Errorf("expected scenario cruise, got %s", cfg.Scenario)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.Tire.Radius <= cfg.Tire.MinEffectiveRadius {
		t.Error("radius should exceed min effective radius")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiresim.yaml")

	cfg := DefaultConfig()
	cfg.Scenario = "corner"
	cfg.Tire.AmbientTemp = 31
	cfg.Conventions.ContactPenetrationThreshold = 0.005

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Scenario != "corner" {
		t.Errorf("expected corner, got %s", loaded.Scenario)
	}
	if loaded.Tire.AmbientTemp != 31 {
		t.Errorf("expected ambient 31, got %f", loaded.Tire.AmbientTemp)
	}
	if loaded.Conventions.ContactPenetrationThreshold != 0.005 {
		t.Errorf("expected threshold 0.005, got %f", loaded.Conventions.ContactPenetrationThreshold)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/tiresim.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("launch", "dragstrip")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Scenario != "launch" {
		t.Errorf("expected launch, got %s", cfg.Scenario)
	}
	// Presets without explicit conventions inherit the defaults.
	if cfg.Conventions.Epsilon == 0 {
		t.Error("expected default conventions to be filled in")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("launch", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "dragstrip"); cfg != nil {
		t.Error("expected nil for nonexistent scenario")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("corner"); len(presets) == 0 {
		t.Error("expected presets for corner")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent scenario")
	}
}

func TestSimConfig(t *testing.T) {
	cfg := DefaultConfig()
	sc := cfg.SimConfig()

	if sc.Dt != cfg.Dt || sc.Duration != cfg.Duration {
		t.Error("timing fields should carry over")
	}
	if sc.TireRadius != cfg.Tire.Radius {
		t.Error("tire radius should carry over")
	}
	if sc.Conventions.Epsilon != cfg.Conventions.Epsilon {
		t.Error("conventions should carry over")
	}
	if !sc.ValidateState {
		t.Error("state validation should default on")
	}
}
