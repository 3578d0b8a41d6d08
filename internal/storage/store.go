package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/physlab/internal/mech"
	"github.com/san-kum/physlab/internal/sim"
)

// Store persists runs (one directory per run: metadata.json + frames.csv)
// and the student's trial log (trials.json) under a base directory.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Experiment string             `json:"experiment"`
	Timestamp  time.Time          `json:"timestamp"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Params     mech.Params        `json:"params"`
	Metrics    map[string]float64 `json:"metrics"`
	HitTarget  bool               `json:"hit_target"`
	TargetTime float64            `json:"target_time,omitempty"`
}

var frameHeader = []string{"time", "position", "velocity", "acceleration", "tension", "friction", "net_force", "mode"}

func (s *Store) SaveRun(experiment string, dt, duration float64, params mech.Params, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", experiment, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Experiment: experiment,
		Timestamp:  time.Now(),
		Dt:         dt,
		Duration:   duration,
		Params:     params,
		Metrics:    result.Metrics,
		HitTarget:  result.HitTarget,
		TargetTime: result.TargetTime,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(frameHeader); err != nil {
		return "", err
	}
	for _, f := range result.Frames {
		row := []string{
			formatFloat(f.T),
			formatFloat(f.Position),
			formatFloat(f.Velocity),
			formatFloat(f.Forces.Acceleration),
			formatFloat(f.Forces.Tension),
			formatFloat(f.Forces.FrictionSigned),
			formatFloat(f.Forces.NetForce),
			string(f.Forces.Mode),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadFrames(runID string) ([]sim.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []sim.Frame{}, nil
	}

	frames := make([]sim.Frame, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < len(frameHeader) {
			continue
		}
		vals := make([]float64, len(frameHeader)-1)
		bad := false
		for i := range vals {
			v, err := strconv.ParseFloat(record[i], 64)
			if err != nil {
				bad = true
				break
			}
			vals[i] = v
		}
		if bad {
			continue
		}
		frames = append(frames, sim.Frame{
			T:        vals[0],
			Position: vals[1],
			Velocity: vals[2],
			Forces: mech.DynamicResult{
				Acceleration:   vals[3],
				Tension:        vals[4],
				FrictionSigned: vals[5],
				NetForce:       vals[6],
				Mode:           mech.Mode(record[7]),
			},
		})
	}

	return frames, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
