// Package acoustics provides the closed-pipe first-harmonic relations
// for the resonance-tube experiment: target air-column length for a
// driving frequency, the inverse speed-of-sound inference from a measured
// length, and a Gaussian resonance-strength score with discrete quality
// banding.
package acoustics
