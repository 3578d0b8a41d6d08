package mech

import (
	"math"
	"testing"
)

func TestResolveFromRestFrictionless(t *testing.T) {
	p := Params{MassTable: 2, MassHanging: 1, Gravity: 10}
	r := ResolveFromRest(p, 0)

	wantA := 10.0 / 3.0
	if math.Abs(r.Acceleration-wantA) > 1e-12 {
		t.Errorf("acceleration: got %f, want %f", r.Acceleration, wantA)
	}
	wantT := 1 * (10 - wantA)
	if math.Abs(r.Tension-wantT) > 1e-12 {
		t.Errorf("tension: got %f, want %f", r.Tension, wantT)
	}
	if r.NetForce != 10 {
		t.Errorf("net force: got %f, want 10", r.NetForce)
	}
	if r.Mode != ModeFrictionless {
		t.Errorf("mode: got %s, want %s", r.Mode, ModeFrictionless)
	}
	if !r.Moved {
		t.Error("expected Moved with positive acceleration")
	}
	if r.TimeToTargetOK {
		t.Error("no target distance, expected TimeToTargetOK false")
	}
}

func TestResolveFromRestClosedForm(t *testing.T) {
	cases := []struct {
		mt, mh, g float64
	}{
		{1, 1, 9.81},
		{5, 0.5, 9.81},
		{0.2, 3, 1.62},
	}
	for _, c := range cases {
		r := ResolveFromRest(Params{MassTable: c.mt, MassHanging: c.mh, Gravity: c.g}, 0)
		want := c.mh * c.g / (c.mh + c.mt)
		if math.Abs(r.Acceleration-want) > 1e-12 {
			t.Errorf("mt=%g mh=%g: acceleration %f, want %f", c.mt, c.mh, r.Acceleration, want)
		}
	}
}

func TestResolveFromRestStaticHold(t *testing.T) {
	p := Params{MassTable: 6, MassHanging: 1, Mu: 0.2, Gravity: 10, FrictionOn: true}
	r := ResolveFromRest(p, 1.0)

	// drive 10 N <= cap 12 N
	if r.Mode != ModeStaticHold {
		t.Fatalf("mode: got %s, want %s", r.Mode, ModeStaticHold)
	}
	if r.Acceleration != 0 {
		t.Errorf("acceleration: got %f, want 0", r.Acceleration)
	}
	if r.Friction != 10 {
		t.Errorf("friction should balance drive exactly: got %f, want 10", r.Friction)
	}
	if r.Tension != 10 {
		t.Errorf("tension: got %f, want 10", r.Tension)
	}
	if r.NetForce != 0 {
		t.Errorf("net force: got %f, want 0", r.NetForce)
	}
	if r.Moved {
		t.Error("held system must not move")
	}
	if r.TimeToTargetOK {
		t.Error("held system has no time to target")
	}
}

func TestResolveFromRestKinetic(t *testing.T) {
	p := Params{MassTable: 2, MassHanging: 2, Mu: 0.25, Gravity: 10, FrictionOn: true}
	r := ResolveFromRest(p, 2.0)

	// drive 20, cap 5, net 15, a = 15/4
	if r.Mode != ModeKinetic {
		t.Fatalf("mode: got %s, want %s", r.Mode, ModeKinetic)
	}
	if math.Abs(r.Acceleration-3.75) > 1e-12 {
		t.Errorf("acceleration: got %f, want 3.75", r.Acceleration)
	}
	if math.Abs(r.Friction-5) > 1e-12 {
		t.Errorf("friction: got %f, want 5 (kinetic equals static cap)", r.Friction)
	}
	if !r.TimeToTargetOK {
		t.Fatal("expected time to target")
	}
	want := math.Sqrt(2 * 2.0 / 3.75)
	if math.Abs(r.TimeToTarget-want) > 1e-12 {
		t.Errorf("time to target: got %f, want %f", r.TimeToTarget, want)
	}
}

func TestResolveFromRestDegenerate(t *testing.T) {
	r := ResolveFromRest(Params{}, 5)
	if r.Mode != ModeStaticHold {
		t.Errorf("zero-mass system: mode %s, want %s", r.Mode, ModeStaticHold)
	}
	if r.Acceleration != 0 || r.Tension != 0 || r.NetForce != 0 {
		t.Error("zero-mass system must resolve to all-zero forces")
	}
}

func TestResolveFromRestClampsNegatives(t *testing.T) {
	r := ResolveFromRest(Params{MassTable: -3, MassHanging: 1, Mu: -1, Gravity: 10, FrictionOn: true}, -2)
	// Negative table mass and mu clamp to zero: frictionless free fall of
	// the hanging mass against only its own inertia.
	if r.Mode != ModeFrictionless {
		t.Errorf("mode: got %s, want %s", r.Mode, ModeFrictionless)
	}
	if math.Abs(r.Acceleration-10) > 1e-12 {
		t.Errorf("acceleration: got %f, want 10", r.Acceleration)
	}
	if r.TimeToTargetOK {
		t.Error("negative target clamps to zero, no time expected")
	}
}

func TestResolveDynamicFrictionOpposesVelocity(t *testing.T) {
	p := Params{MassTable: 2, MassHanging: 1, Mu: 0.3, Gravity: 10, FrictionOn: true}

	fwd := ResolveDynamic(p, 0.5)
	if fwd.FrictionSigned >= 0 {
		t.Errorf("forward motion: friction %f, want negative", fwd.FrictionSigned)
	}
	back := ResolveDynamic(p, -0.5)
	if back.FrictionSigned <= 0 {
		t.Errorf("backward motion: friction %f, want positive", back.FrictionSigned)
	}
	// Drive and friction add when moving backward, so the backward case
	// accelerates harder.
	if back.Acceleration <= fwd.Acceleration {
		t.Errorf("backward a=%f should exceed forward a=%f", back.Acceleration, fwd.Acceleration)
	}
	if fwd.Mode != ModeKinetic || back.Mode != ModeKinetic {
		t.Error("moving system must classify kinetic")
	}
}

func TestResolveDynamicStictionAtTurnaround(t *testing.T) {
	held := Params{MassTable: 6, MassHanging: 1, Mu: 0.2, Gravity: 10, FrictionOn: true}

	// At exactly the epsilon the system counts as at rest.
	r := ResolveDynamic(held, VelocityEpsilon)
	if r.Mode != ModeStaticHold {
		t.Fatalf("|v| == epsilon: mode %s, want %s", r.Mode, ModeStaticHold)
	}
	if r.FrictionSigned != -r.DriveForce {
		t.Errorf("static friction must balance drive: got %f, want %f", r.FrictionSigned, -r.DriveForce)
	}
	if r.Acceleration != 0 || r.NetForce != 0 {
		t.Error("held system must have zero net force and acceleration")
	}

	// Just above the epsilon friction reverts to velocity-opposing kinetic.
	r = ResolveDynamic(held, 2*VelocityEpsilon)
	if r.Mode != ModeKinetic {
		t.Fatalf("|v| > epsilon: mode %s, want %s", r.Mode, ModeKinetic)
	}
	kin := held.Mu * held.MassTable * held.Gravity
	if math.Abs(r.FrictionSigned+kin) > 1e-12 {
		t.Errorf("kinetic friction: got %f, want %f", r.FrictionSigned, -kin)
	}
}

func TestResolveDynamicBreakawayNearRest(t *testing.T) {
	p := Params{MassTable: 2, MassHanging: 2, Mu: 0.25, Gravity: 10, FrictionOn: true}

	r := ResolveDynamic(p, 0)
	// drive 20 > kin 5: breaks away even at rest.
	if r.Mode != ModeKinetic {
		t.Fatalf("mode: got %s, want %s", r.Mode, ModeKinetic)
	}
	if r.FrictionSigned != -5 {
		t.Errorf("friction at breakaway: got %f, want -5", r.FrictionSigned)
	}
	if math.Abs(r.Acceleration-3.75) > 1e-12 {
		t.Errorf("acceleration: got %f, want 3.75", r.Acceleration)
	}
}

func TestResolveDynamicFrictionless(t *testing.T) {
	p := Params{MassTable: 2, MassHanging: 1, Gravity: 10}
	r := ResolveDynamic(p, -3)
	if r.FrictionSigned != 0 {
		t.Errorf("frictionless: friction %f, want 0", r.FrictionSigned)
	}
	if math.Abs(r.Acceleration-10.0/3.0) > 1e-12 {
		t.Errorf("acceleration: got %f, want %f", r.Acceleration, 10.0/3.0)
	}
}

func TestResolveDynamicMatchesRestCase(t *testing.T) {
	p := Params{MassTable: 3, MassHanging: 1.5, Mu: 0.1, Gravity: 9.81, FrictionOn: true}
	rest := ResolveFromRest(p, 0)
	dyn := ResolveDynamic(p, 0)

	if rest.Mode != dyn.Mode {
		t.Fatalf("modes differ at rest: %s vs %s", rest.Mode, dyn.Mode)
	}
	if math.Abs(rest.Acceleration-dyn.Acceleration) > 1e-12 {
		t.Errorf("accelerations differ: %f vs %f", rest.Acceleration, dyn.Acceleration)
	}
	if math.Abs(rest.Tension-dyn.Tension) > 1e-12 {
		t.Errorf("tensions differ: %f vs %f", rest.Tension, dyn.Tension)
	}
}
