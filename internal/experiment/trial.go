package experiment

import (
	"time"

	"github.com/san-kum/physlab/internal/acoustics"
	"github.com/san-kum/physlab/internal/mech"
)

// Trial is one row of the student's trial table: the knob settings at the
// moment of logging plus the resolved outputs. Inputs and Outputs are
// name/value maps so both experiments share one record shape.
type Trial struct {
	ID         int                `json:"id"`
	Experiment string             `json:"experiment"`
	LoggedAt   time.Time          `json:"logged_at"`
	Inputs     map[string]float64 `json:"inputs"`
	Outputs    map[string]float64 `json:"outputs"`
	Mode       string             `json:"mode,omitempty"`
	Band       string             `json:"band,omitempty"`
	Accepted   bool               `json:"accepted,omitempty"`
	Note       string             `json:"note,omitempty"`
}

// NewAtwoodTrial captures a from-rest resolution as a trial row.
func NewAtwoodTrial(p mech.Params, target float64, r mech.RestResult) Trial {
	t := Trial{
		Experiment: "atwood",
		LoggedAt:   time.Now(),
		Inputs: map[string]float64{
			"mass_table_kg":   p.MassTable,
			"mass_hanging_kg": p.MassHanging,
			"mu":              p.Mu,
			"gravity":         p.Gravity,
			"target_m":        target,
		},
		Outputs: map[string]float64{
			"acceleration": r.Acceleration,
			"tension":      r.Tension,
			"friction":     r.Friction,
			"net_force":    r.NetForce,
			"drive_force":  r.DriveForce,
		},
		Mode: string(r.Mode),
	}
	if r.TimeToTargetOK {
		t.Outputs["time_to_target"] = r.TimeToTarget
	}
	return t
}

// NewResonanceTrial captures a tube reading as a trial row.
func NewResonanceTrial(frequencyHz, diameter, airLength, target float64) Trial {
	strength := acoustics.ResonanceStrength(airLength, target)
	band := acoustics.QualityBand(strength)
	return Trial{
		Experiment: "resonance",
		LoggedAt:   time.Now(),
		Inputs: map[string]float64{
			"frequency_hz":    frequencyHz,
			"tube_diameter_m": diameter,
			"air_length_m":    airLength,
		},
		Outputs: map[string]float64{
			"target_length_m": target,
			"inferred_speed":  acoustics.InferredSpeed(frequencyHz, airLength, diameter),
			"strength":        strength,
		},
		Band:     band.Label,
		Accepted: band.Accepted,
	}
}
