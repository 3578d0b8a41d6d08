package metrics

import (
	"github.com/san-kum/physlab/internal/mech"
	"github.com/san-kum/physlab/internal/sim"
)

// HoldFraction reports the fraction of frames spent pinned by static
// friction.
type HoldFraction struct {
	held    int
	samples int
}

func NewHoldFraction() *HoldFraction {
	return &HoldFraction{}
}

func (h *HoldFraction) Name() string { return "hold_fraction" }

func (h *HoldFraction) Observe(f sim.Frame) {
	h.samples++
	if f.Forces.Mode == mech.ModeStaticHold {
		h.held++
	}
}

func (h *HoldFraction) Value() float64 {
	if h.samples == 0 {
		return 0
	}
	return float64(h.held) / float64(h.samples)
}

func (h *HoldFraction) Reset() {
	h.held = 0
	h.samples = 0
}
