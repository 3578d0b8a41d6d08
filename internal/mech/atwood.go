package mech

import "math"

// VelocityEpsilon is the speed below which a moving system is treated as
// momentarily at rest and the static-vs-kinetic decision is re-evaluated.
// Keeping it at 1e-4 m/s is what prevents friction-sign flapping when the
// cart nearly stops at a turnaround.
const VelocityEpsilon = 1e-4

// Mode classifies the mechanical regime of a resolved system.
type Mode string

const (
	ModeFrictionless Mode = "frictionless"
	ModeKinetic      Mode = "kinetic"
	ModeStaticHold   Mode = "static_hold"
)

// Params describes a half-Atwood machine: a cart of MassTable on a
// horizontal surface, tied over an ideal pulley to a hanging MassHanging.
// Negative masses, gravity, and Mu are clamped to zero rather than
// rejected, so every input resolves to a physically sane result.
type Params struct {
	MassTable   float64 // kg, on the table
	MassHanging float64 // kg, hanging off the pulley
	Mu          float64 // friction coefficient (single, static == kinetic)
	Gravity     float64 // m/s^2
	FrictionOn  bool
}

func (p Params) clamped() Params {
	p.MassTable = clampNonNeg(p.MassTable)
	p.MassHanging = clampNonNeg(p.MassHanging)
	p.Mu = clampNonNeg(p.Mu)
	p.Gravity = clampNonNeg(p.Gravity)
	return p
}

// RestResult holds forces and kinematics for a system released from rest.
type RestResult struct {
	Acceleration   float64 // m/s^2
	Tension        float64 // N
	Friction       float64 // N, magnitude; balancing force when held
	NetForce       float64 // N
	DriveForce     float64 // N, hanging weight
	Moved          bool
	TimeToTarget   float64 // s, valid only when TimeToTargetOK
	TimeToTargetOK bool
	Mode           Mode
}

// DynamicResult holds forces for a system observed at a given velocity.
// FrictionSigned carries direction: negative opposes forward motion.
type DynamicResult struct {
	Acceleration   float64
	Tension        float64
	FrictionSigned float64
	NetForce       float64
	DriveForce     float64
	Mode           Mode
}

// ResolveFromRest classifies the regime and computes forces for a system
// released from rest, optionally reporting the time to cover
// targetDistance. targetDistance is clamped to >= 0; a zero target or a
// held system yields TimeToTargetOK == false.
func ResolveFromRest(p Params, targetDistance float64) RestResult {
	p = p.clamped()
	targetDistance = clampNonNeg(targetDistance)

	total := p.MassTable + p.MassHanging
	drive := p.MassHanging * p.Gravity

	if total <= 0 {
		return RestResult{Mode: ModeStaticHold}
	}

	if !p.FrictionOn || p.Mu == 0 {
		a := drive / total
		r := RestResult{
			Acceleration: a,
			Tension:      p.MassHanging * (p.Gravity - a),
			NetForce:     drive,
			DriveForce:   drive,
			Moved:        a > 0,
			Mode:         ModeFrictionless,
		}
		r.TimeToTarget, r.TimeToTargetOK = timeToTarget(a, targetDistance)
		return r
	}

	cap := p.Mu * p.MassTable * p.Gravity
	if drive <= cap {
		// Static friction supplies exactly the balancing force, not the
		// Coulomb maximum.
		return RestResult{
			Tension:    drive,
			Friction:   drive,
			DriveForce: drive,
			Mode:       ModeStaticHold,
		}
	}

	net := drive - cap
	a := net / total
	r := RestResult{
		Acceleration: a,
		Tension:      p.MassHanging * (p.Gravity - a),
		Friction:     cap,
		NetForce:     net,
		DriveForce:   drive,
		Moved:        true,
		Mode:         ModeKinetic,
	}
	r.TimeToTarget, r.TimeToTargetOK = timeToTarget(a, targetDistance)
	return r
}

// ResolveDynamic computes instantaneous forces for a system moving at the
// given signed velocity. Below VelocityEpsilon the static-vs-kinetic
// decision is re-run as if from rest; otherwise kinetic friction strictly
// opposes the current velocity, whatever the drive force does.
func ResolveDynamic(p Params, velocity float64) DynamicResult {
	p = p.clamped()

	total := p.MassTable + p.MassHanging
	drive := p.MassHanging * p.Gravity

	if total <= 0 {
		return DynamicResult{Mode: ModeStaticHold}
	}

	if !p.FrictionOn || p.Mu == 0 {
		a := drive / total
		return DynamicResult{
			Acceleration: a,
			Tension:      p.MassHanging * (p.Gravity - a),
			NetForce:     drive,
			DriveForce:   drive,
			Mode:         ModeFrictionless,
		}
	}

	kin := p.Mu * p.MassTable * p.Gravity

	if math.Abs(velocity) <= VelocityEpsilon {
		if drive <= kin {
			return DynamicResult{
				Tension:        drive,
				FrictionSigned: -drive,
				DriveForce:     drive,
				Mode:           ModeStaticHold,
			}
		}
		net := drive - kin
		a := net / total
		return DynamicResult{
			Acceleration:   a,
			Tension:        p.MassHanging * (p.Gravity - a),
			FrictionSigned: -kin,
			NetForce:       net,
			DriveForce:     drive,
			Mode:           ModeKinetic,
		}
	}

	friction := -sign(velocity) * kin
	net := drive + friction
	a := net / total
	return DynamicResult{
		Acceleration:   a,
		Tension:        p.MassHanging * (p.Gravity - a),
		FrictionSigned: friction,
		NetForce:       net,
		DriveForce:     drive,
		Mode:           ModeKinetic,
	}
}

func timeToTarget(a, d float64) (float64, bool) {
	if a <= 0 || d <= 0 {
		return 0, false
	}
	return math.Sqrt(2 * d / a), true
}

func clampNonNeg(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
