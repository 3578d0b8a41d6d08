package experiment

import (
	"testing"

	"github.com/san-kum/physlab/internal/mech"
)

func TestRegistryKnowsBothExperiments(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"atwood", "resonance"} {
		d, err := r.Get(name)
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}
		cfg := d.Defaults()
		if cfg.Experiment != name {
			t.Errorf("defaults for %s carry experiment %s", name, cfg.Experiment)
		}
	}

	if _, err := r.Get("bogus"); err == nil {
		t.Error("expected error for unknown experiment")
	}
	if len(r.List()) != 2 {
		t.Errorf("expected 2 experiments, got %d", len(r.List()))
	}
}

func TestNewAtwoodTrial(t *testing.T) {
	p := mech.Params{MassTable: 2, MassHanging: 1, Gravity: 10}
	r := mech.ResolveFromRest(p, 1.0)
	trial := NewAtwoodTrial(p, 1.0, r)

	if trial.Experiment != "atwood" {
		t.Errorf("experiment: got %s", trial.Experiment)
	}
	if trial.Mode != string(mech.ModeFrictionless) {
		t.Errorf("mode: got %s", trial.Mode)
	}
	if trial.Outputs["acceleration"] != r.Acceleration {
		t.Error("acceleration not captured")
	}
	if _, ok := trial.Outputs["time_to_target"]; !ok {
		t.Error("expected time_to_target for a moving system")
	}
}

func TestNewAtwoodTrialOmitsUndefinedTime(t *testing.T) {
	p := mech.Params{MassTable: 6, MassHanging: 1, Mu: 0.2, Gravity: 10, FrictionOn: true}
	trial := NewAtwoodTrial(p, 1.0, mech.ResolveFromRest(p, 1.0))

	if _, ok := trial.Outputs["time_to_target"]; ok {
		t.Error("held system must not report time_to_target")
	}
	if trial.Mode != string(mech.ModeStaticHold) {
		t.Errorf("mode: got %s", trial.Mode)
	}
}

func TestNewResonanceTrial(t *testing.T) {
	// Reading exactly at the target: full strength, accepted.
	trial := NewResonanceTrial(440, 0.03, 0.186, 0.186)
	if trial.Outputs["strength"] != 1.0 {
		t.Errorf("strength at target: got %f", trial.Outputs["strength"])
	}
	if !trial.Accepted || trial.Band != "High" {
		t.Errorf("expected accepted High band, got %s accepted=%v", trial.Band, trial.Accepted)
	}

	// Far off target: rejected.
	trial = NewResonanceTrial(440, 0.03, 0.10, 0.186)
	if trial.Accepted {
		t.Error("off-peak reading must not be accepted")
	}
}
