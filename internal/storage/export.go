package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/physlab/internal/sim"
)

// ExportData is the flat JSON shape consumed by external tooling.
type ExportData struct {
	ID         string             `json:"id"`
	Experiment string             `json:"experiment"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Steps      int                `json:"steps"`
	Times      []float64          `json:"times"`
	Positions  []float64          `json:"positions"`
	Velocities []float64          `json:"velocities"`
	Tensions   []float64          `json:"tensions"`
	Frictions  []float64          `json:"frictions"`
	Modes      []string           `json:"modes"`
	Metrics    map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, frames []sim.Frame) error {
	data := ExportData{
		ID:         meta.ID,
		Experiment: meta.Experiment,
		Dt:         meta.Dt,
		Duration:   meta.Duration,
		Steps:      len(frames),
		Times:      make([]float64, len(frames)),
		Positions:  make([]float64, len(frames)),
		Velocities: make([]float64, len(frames)),
		Tensions:   make([]float64, len(frames)),
		Frictions:  make([]float64, len(frames)),
		Modes:      make([]string, len(frames)),
		Metrics:    meta.Metrics,
	}
	for i, f := range frames {
		data.Times[i] = f.T
		data.Positions[i] = f.Position
		data.Velocities[i] = f.Velocity
		data.Tensions[i] = f.Forces.Tension
		data.Frictions[i] = f.Forces.FrictionSigned
		data.Modes[i] = string(f.Forces.Mode)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
