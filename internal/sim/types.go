package sim

import (
	"math"

	"github.com/san-kum/physlab/internal/mech"
)

// Frame is one sampled instant of the running apparatus: kinematic state
// plus the force resolution that produced it.
type Frame struct {
	T        float64
	Position float64
	Velocity float64
	Forces   mech.DynamicResult
}

func (f Frame) IsValid() bool {
	for _, v := range []float64{f.T, f.Position, f.Velocity, f.Forces.Acceleration} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Metric accumulates a scalar over the frames of a run.
type Metric interface {
	Name() string
	Observe(f Frame)
	Value() float64
	Reset()
}

// Observer receives every frame as it is produced.
type Observer interface {
	OnFrame(f Frame)
}

// Config controls a run. StopAtTarget ends the run once the cart has
// covered TargetDistance.
type Config struct {
	Dt              float64
	Duration        float64
	InitialPosition float64
	InitialVelocity float64
	TargetDistance  float64
	StopAtTarget    bool
}

func DefaultConfig() Config {
	return Config{Dt: 1.0 / 120.0, Duration: 10.0}
}

// Result holds the frame history and final metric values of a run.
type Result struct {
	Frames     []Frame
	Metrics    map[string]float64
	StepsTaken int
	HitTarget  bool
	TargetTime float64 // valid only when HitTarget
}
