package metrics

import (
	"github.com/san-kum/physlab/internal/mech"
	"github.com/san-kum/physlab/internal/sim"
)

// Dissipation tracks the mechanical energy lost to friction: the work
// done by the falling mass minus the kinetic energy of the pair. Zero for
// a frictionless run, monotonically growing otherwise.
type Dissipation struct {
	params mech.Params
	origin float64
	value  float64
	seen   bool
}

func NewDissipation(params mech.Params) *Dissipation {
	return &Dissipation{params: params}
}

func (d *Dissipation) Name() string { return "energy_dissipated" }

func (d *Dissipation) Observe(f sim.Frame) {
	if !d.seen {
		d.origin = f.Position
		d.seen = true
	}
	total := d.params.MassTable + d.params.MassHanging
	drive := d.params.MassHanging * d.params.Gravity
	ke := 0.5 * total * f.Velocity * f.Velocity
	d.value = drive*(f.Position-d.origin) - ke
}

func (d *Dissipation) Value() float64 { return d.value }

func (d *Dissipation) Reset() {
	d.value = 0
	d.origin = 0
	d.seen = false
}
