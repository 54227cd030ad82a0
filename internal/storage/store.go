// Package storage keeps recorded runs on disk, one directory per run.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/san-kum/wanderer/internal/config"
	"github.com/san-kum/wanderer/internal/metrics"
	"github.com/san-kum/wanderer/internal/sim"
)

const (
	metadataFile = "metadata.json"
	configFile   = "config.yaml"
	traceFile    = "trace.csv"
)

var ErrRunNotFound = errors.New("storage: run not found")

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
	ID        string             `json:"id"`
	Preset    string             `json:"preset"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Ticks     int                `json:"ticks"`
	FrameRate int                `json:"frame_rate"`
	Width     float64            `json:"width"`
	Height    float64            `json:"height"`
	MoverSize float64            `json:"mover_size"`
	Pointer   string             `json:"pointer"`
	Counts    map[string]int     `json:"counts"`
	Metrics   map[string]float64 `json:"metrics"`
	Summary   metrics.Summary    `json:"summary"`
}

// Save writes a run and returns its ID. An empty meta.ID gets a fresh UUID
// and a zero timestamp is set to now.
func (s *Store) Save(meta RunMetadata, cfg config.Config, trace []sim.Sample) (string, error) {
	if meta.ID == "" {
		meta.ID = uuid.New().String()
	}
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now().UTC()
	}

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", fmt.Errorf("writing metadata: %w", err)
	}
	if err := config.Save(filepath.Join(runDir, configFile), &cfg); err != nil {
		return "", fmt.Errorf("writing config: %w", err)
	}

	f, err := os.Create(filepath.Join(runDir, traceFile))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if trace == nil {
		trace = []sim.Sample{}
	}
	if err := gocsv.MarshalFile(&trace, f); err != nil {
		return "", fmt.Errorf("writing trace: %w", err)
	}

	return meta.ID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// List returns every readable run, newest first.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%s: %w", runID, err)
	}
	return &meta, nil
}

// LoadConfig returns the configuration the run was recorded with.
func (s *Store) LoadConfig(runID string) (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(s.baseDir, runID, configFile))
	if err != nil && os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return cfg, err
}

func (s *Store) LoadTrace(runID string) ([]sim.Sample, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer f.Close()

	trace := []sim.Sample{}
	if err := gocsv.UnmarshalFile(f, &trace); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []sim.Sample{}, nil
		}
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return trace, nil
}
