// Package storage persists the corpus snapshot, run metadata and the
// active model as JSON files under a data directory. Writes go through
// a temp file and an atomic rename so readers never observe a partial
// snapshot.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/wattwise/wattwise/internal/energy"
	"github.com/wattwise/wattwise/internal/host"
	"github.com/wattwise/wattwise/internal/model"
)

const (
	corpusFileName = "wattwise_corpus.json"
	runFileName    = "wattwise_run.json"
	modelFileName  = "wattwise_model.json"
)

// RunRecord is the metadata persisted after each training run. Each run
// fully replaces the previous record.
type RunRecord struct {
	ID          string            `json:"id"`
	TrainedAt   time.Time         `json:"trained_at"`
	Duration    time.Duration     `json:"duration"`
	DatasetSize int               `json:"dataset_size"`
	Winner      model.Kind        `json:"winner"`
	Metrics     model.Metrics     `json:"metrics"`
	Candidates  []model.Candidate `json:"candidates"`
	Baseline    model.Metrics     `json:"baseline"`
	FellBack    bool              `json:"fell_back"`
	Host        host.Snapshot     `json:"host"`
}

// Store handles persistence for the forecasting pipeline.
type Store struct {
	dataDir string
	logger  *slog.Logger
	mu      sync.Mutex
}

// New creates a Store rooted at dataDir.
func New(dataDir string, logger *slog.Logger) *Store {
	return &Store{dataDir: dataDir, logger: logger}
}

// ReplaceCorpus replaces the corpus snapshot with the given
// observations. The replace is atomic: a reader sees either the old or
// the new snapshot, never a mix.
func (s *Store) ReplaceCorpus(corpus []energy.Observation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeJSON(corpusFileName, corpus); err != nil {
		return fmt.Errorf("replace corpus: %w", err)
	}
	s.logger.Debug("corpus snapshot replaced", "records", len(corpus))
	return nil
}

// LoadCorpus returns the current corpus snapshot, or nil when none has
// been persisted yet.
func (s *Store) LoadCorpus() ([]energy.Observation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var corpus []energy.Observation
	found, err := s.readJSON(corpusFileName, &corpus)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	if !found {
		return nil, nil
	}
	return corpus, nil
}

// SaveRun persists the metadata of a completed training run, replacing
// the previous record.
func (s *Store) SaveRun(run RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeJSON(runFileName, run); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	s.logger.Debug("run metadata saved", "run_id", run.ID, "winner", run.Winner)
	return nil
}

// LoadRun returns the metadata of the last completed run, or nil when
// no run has completed yet.
func (s *Store) LoadRun() (*RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var run RunRecord
	found, err := s.readJSON(runFileName, &run)
	if err != nil {
		return nil, fmt.Errorf("load run: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &run, nil
}

// SaveModel persists the serialized form of the active model.
func (s *Store) SaveModel(st model.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeJSON(modelFileName, st); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	s.logger.Debug("model state saved", "kind", st.Kind)
	return nil
}

// LoadModel returns the persisted model state, or nil when no model
// has been saved yet.
func (s *Store) LoadModel() (*model.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st model.State
	found, err := s.readJSON(modelFileName, &st)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &st, nil
}

func (s *Store) writeJSON(name string, v any) error {
	if err := os.MkdirAll(s.dataDir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	filePath := filepath.Join(s.dataDir, name)
	tempPath := filePath + ".tmp"

	file, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		file.Close()
		os.Remove(tempPath)
		return fmt.Errorf("encode: %w", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tempPath, filePath); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// readJSON reports whether the file existed; a missing file is not an
// error.
func (s *Store) readJSON(name string, v any) (bool, error) {
	file, err := os.Open(filepath.Join(s.dataDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(v); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}
