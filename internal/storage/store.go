// Package storage keeps simulation runs on disk: one directory per run with
// a metadata.json and the final particle snapshot.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/lagsim/internal/particles"
	"github.com/san-kum/lagsim/internal/snapshot"
)

const snapshotFile = "state.json.gz"

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
	ID        string    `json:"id"`
	Group     string    `json:"group"`
	Scheme    string    `json:"scheme"`
	Timestamp time.Time `json:"timestamp"`
	Dt        float64   `json:"dt"`
	Steps     int       `json:"steps"`
	Particles int       `json:"particles"`
	FinalTime float64   `json:"final_time"`
}

// Save writes a run directory holding the metadata and a current-format
// snapshot of the group, and returns the run id.
func (s *Store) Save(g *particles.Group, scheme string, dt float64, steps int, finalTime float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", scheme, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Group:     g.Name(),
		Scheme:    scheme,
		Timestamp: time.Now(),
		Dt:        dt,
		Steps:     steps,
		Particles: g.Len(),
		FinalTime: finalTime,
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

	solverData := map[string]float64{
		"t":  finalTime,
		"dt": dt,
	}
	if err := snapshot.Dump(filepath.Join(runDir, snapshotFile), []*particles.Group{g}, solverData); err != nil {
		return "", err
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
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

// LoadSnapshot reads back the particle state dumped for a run.
func (s *Store) LoadSnapshot(runID string) (*snapshot.Snapshot, error) {
	return snapshot.Load(filepath.Join(s.baseDir, runID, snapshotFile))
}
