package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/san-kum/physlab/internal/experiment"
)

const trialsFile = "trials.json"

// AppendTrial assigns the next ID and appends the trial to the log.
func (s *Store) AppendTrial(t experiment.Trial) (experiment.Trial, error) {
	trials, err := s.LoadTrials()
	if err != nil {
		return t, err
	}

	t.ID = 1
	if len(trials) > 0 {
		t.ID = trials[len(trials)-1].ID + 1
	}
	trials = append(trials, t)

	data, err := json.MarshalIndent(trials, "", "  ")
	if err != nil {
		return t, err
	}
	return t, os.WriteFile(filepath.Join(s.baseDir, trialsFile), data, 0644)
}

// LoadTrials returns the full trial log, empty if none was written yet.
func (s *Store) LoadTrials() ([]experiment.Trial, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, trialsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []experiment.Trial{}, nil
		}
		return nil, err
	}
	var trials []experiment.Trial
	if err := json.Unmarshal(data, &trials); err != nil {
		return nil, err
	}
	return trials, nil
}
