package metrics

import (
	"math"

	"github.com/san-kum/physlab/internal/sim"
)

// PeakSpeed records the largest |v| seen during a run.
type PeakSpeed struct {
	peak float64
}

func NewPeakSpeed() *PeakSpeed {
	return &PeakSpeed{}
}

func (p *PeakSpeed) Name() string { return "peak_speed" }

func (p *PeakSpeed) Observe(f sim.Frame) {
	if s := math.Abs(f.Velocity); s > p.peak {
		p.peak = s
	}
}

func (p *PeakSpeed) Value() float64 { return p.peak }

func (p *PeakSpeed) Reset() { p.peak = 0 }
