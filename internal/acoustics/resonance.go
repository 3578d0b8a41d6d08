package acoustics

import "math"

// EndCorrection is the empirical open-end correction applied as a fixed
// fraction of tube diameter. Standard value for a flanged open pipe end.
const EndCorrection = 0.3

// Quality band thresholds on the Gaussian strength score. Lower bounds
// inclusive.
const (
	HighThreshold = 0.94
	FairThreshold = 0.8
)

// MinBandwidth keeps the default acceptance window sane for very short
// target lengths.
const MinBandwidth = 0.008

// Band is the discrete quality classification of a resonance reading.
// Class is a stable machine-readable key ("high", "fair", "off") used by
// the API and the live view styling.
type Band struct {
	Label    string `json:"label"`
	Accepted bool   `json:"accepted"`
	Class    string `json:"class"`
}

// SpeedOfSoundFromTemp returns the speed of sound in air at tempC in
// degrees Celsius, using the linear approximation 331 + 0.6 t.
func SpeedOfSoundFromTemp(tempC float64) float64 {
	return 331 + 0.6*tempC
}

// FirstHarmonicAirLength returns the air-column length at which a closed
// pipe of the given diameter resonates at its first harmonic.
func FirstHarmonicAirLength(frequencyHz, speed, diameter float64) float64 {
	return speed/(4*frequencyHz) - EndCorrection*diameter
}

// InferredSpeed is the algebraic inverse of FirstHarmonicAirLength:
// the speed of sound implied by a measured resonant column length.
func InferredSpeed(frequencyHz, airLength, diameter float64) float64 {
	return 4 * frequencyHz * (airLength + EndCorrection*diameter)
}

// ResonanceStrength scores how close airLength is to target with the
// default bandwidth max(MinBandwidth, 0.06*target).
func ResonanceStrength(airLength, target float64) float64 {
	return ResonanceStrengthWithBandwidth(airLength, target, DefaultBandwidth(target))
}

// ResonanceStrengthWithBandwidth is the Gaussian falloff
// exp(-(L-T)^2 / (2 bw^2)). Exactly 1 at the target, always in (0, 1].
func ResonanceStrengthWithBandwidth(airLength, target, bandwidth float64) float64 {
	offset := airLength - target
	return math.Exp(-(offset * offset) / (2 * bandwidth * bandwidth))
}

// DefaultBandwidth returns the acceptance window for a target length.
func DefaultBandwidth(target float64) float64 {
	return math.Max(MinBandwidth, target*0.06)
}

// QualityBand maps a strength score to its discrete band.
func QualityBand(strength float64) Band {
	switch {
	case strength >= HighThreshold:
		return Band{Label: "High", Accepted: true, Class: "high"}
	case strength >= FairThreshold:
		return Band{Label: "Fair", Class: "fair"}
	default:
		return Band{Label: "Off peak", Class: "off"}
	}
}
