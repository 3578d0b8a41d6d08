package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Experiment != "atwood" {
		t.Errorf("expected experiment atwood, got %s", cfg.Experiment)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Atwood.Gravity != DefaultGravity {
		t.Errorf("expected gravity %f, got %f", DefaultGravity, cfg.Atwood.Gravity)
	}
	if cfg.Resonance.FrequencyHz != DefaultFrequency {
		t.Errorf("expected frequency %f, got %f", DefaultFrequency, cfg.Resonance.FrequencyHz)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("atwood", "sticky")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if !cfg.Atwood.FrictionOn {
		t.Error("sticky preset should enable friction")
	}
	if cfg.Atwood.Mu != 0.2 {
		t.Errorf("expected mu 0.2, got %f", cfg.Atwood.Mu)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("atwood", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "sticky") != nil {
		t.Error("expected nil for nonexistent experiment")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("atwood")) == 0 {
		t.Error("expected presets for atwood")
	}
	if len(ListPresets("resonance")) == 0 {
		t.Error("expected presets for resonance")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent experiment")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Experiment = "resonance"
	cfg.Resonance.FrequencyHz = 523.25
	cfg.Atwood.Mu = 0.35
	cfg.Atwood.FrictionOn = true

	path := filepath.Join(t.TempDir(), "lab.yaml")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Experiment != "resonance" {
		t.Errorf("experiment: got %s", loaded.Experiment)
	}
	if loaded.Resonance.FrequencyHz != 523.25 {
		t.Errorf("frequency: got %f", loaded.Resonance.FrequencyHz)
	}
	if loaded.Atwood.Mu != 0.35 || !loaded.Atwood.FrictionOn {
		t.Error("atwood section did not round-trip")
	}
}

func TestMechParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Atwood.FrictionOn = true
	p := cfg.MechParams()

	if p.MassTable != cfg.Atwood.MassTableKg || p.MassHanging != cfg.Atwood.MassHangingKg {
		t.Error("masses not carried over")
	}
	if !p.FrictionOn || p.Mu != cfg.Atwood.Mu {
		t.Error("friction settings not carried over")
	}
}
