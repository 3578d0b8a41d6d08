package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/physlab/internal/mech"
)

// Runner advances a half-Atwood system frame by frame. Each step calls
// mech.ResolveDynamic at the current velocity, which is exactly how the
// interactive view animates; there is no separate ODE right-hand side.
//
// Runners are not safe for concurrent use.
type Runner struct {
	params    mech.Params
	metrics   []Metric
	observers []Observer
}

func New(params mech.Params) *Runner {
	return &Runner{params: params}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Params returns the current system parameters.
func (r *Runner) Params() mech.Params { return r.params }

// SetParams swaps the system parameters; takes effect on the next step.
func (r *Runner) SetParams(p mech.Params) { r.params = p }

// Step advances one frame from the given state using semi-implicit Euler.
// Under static hold the velocity is pinned to zero so a stalled cart
// cannot creep.
func (r *Runner) Step(pos, vel, t, dt float64) Frame {
	forces := mech.ResolveDynamic(r.params, vel)

	if forces.Mode == mech.ModeStaticHold {
		vel = 0
	} else {
		next := vel + forces.Acceleration*dt
		// A finite step can jump across v=0 without landing inside the
		// solver's epsilon window. On a sign change, let the stiction
		// rule decide at rest before carrying the overshoot.
		if vel != 0 && next*vel < 0 &&
			mech.ResolveDynamic(r.params, 0).Mode == mech.ModeStaticHold {
			next = 0
		}
		vel = next
	}
	pos += vel * dt

	return Frame{T: t + dt, Position: pos, Velocity: vel, Forces: forces}
}

// Run executes a full simulation under cfg, honoring ctx cancellation.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Dt <= 0 {
		return nil, fmt.Errorf("sim: dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return nil, fmt.Errorf("sim: duration must be positive, got %f", cfg.Duration)
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Frames:  make([]Frame, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	frame := Frame{
		Position: cfg.InitialPosition,
		Velocity: cfg.InitialVelocity,
		Forces:   mech.ResolveDynamic(r.params, cfg.InitialVelocity),
	}
	result.Frames = append(result.Frames, frame)
	r.emit(frame)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		frame = r.Step(frame.Position, frame.Velocity, frame.T, cfg.Dt)
		if !frame.IsValid() {
			return result, fmt.Errorf("sim: invalid state at t=%.4f (NaN/Inf)", frame.T)
		}

		result.Frames = append(result.Frames, frame)
		result.StepsTaken++
		r.emit(frame)

		if cfg.StopAtTarget && cfg.TargetDistance > 0 &&
			frame.Position-cfg.InitialPosition >= cfg.TargetDistance {
			result.HitTarget = true
			result.TargetTime = frame.T
			break
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (r *Runner) emit(f Frame) {
	for _, m := range r.metrics {
		m.Observe(f)
	}
	for _, o := range r.observers {
		o.OnFrame(f)
	}
}
