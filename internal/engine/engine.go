// Package engine composes synthesis, ensemble training and serving
// into a stateful forecasting pipeline.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wattwise/wattwise/internal/energy"
	"github.com/wattwise/wattwise/internal/host"
	"github.com/wattwise/wattwise/internal/metrics"
	"github.com/wattwise/wattwise/internal/model"
	"github.com/wattwise/wattwise/internal/patterns"
	"github.com/wattwise/wattwise/internal/recommend"
	"github.com/wattwise/wattwise/internal/storage"
	"github.com/wattwise/wattwise/internal/synth"
)

// Status is the lifecycle state of the engine.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusTraining  Status = "training"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

var (
	// ErrModelNotTrained signals a prediction attempted before any
	// successful training run.
	ErrModelNotTrained = errors.New("no trained model available")

	// ErrTrainingInProgress signals a second Train call while one is
	// already in flight.
	ErrTrainingInProgress = errors.New("a training run is already in progress")
)

// Prediction is the serving output for one feature vector.
type Prediction struct {
	PredictedEnergyKwh float64    `json:"predicted_energy_kwh"`
	Confidence         float64    `json:"confidence"`
	Model              model.Kind `json:"model"`
}

// StatusInfo is the externally visible engine state.
type StatusInfo struct {
	Status           Status     `json:"status"`
	LastTrainingDate *time.Time `json:"last_training_date,omitempty"`
	DatasetSize      int        `json:"dataset_size"`
}

// Report compares the candidates of one training run.
type Report struct {
	RunID       string            `json:"run_id"`
	Winner      model.Kind        `json:"winner"`
	Metrics     model.Metrics     `json:"metrics"`
	Candidates  []model.Candidate `json:"candidates"`
	Baseline    model.Metrics     `json:"baseline"`
	FellBack    bool              `json:"fell_back"`
	DatasetSize int               `json:"dataset_size"`
	Duration    time.Duration     `json:"duration"`
}

// Engine owns the retained model and the training state machine. One
// instance per lifecycle boundary; all dependencies are explicit.
type Engine struct {
	synthesizer *synth.Synthesizer
	trainer     *model.Trainer
	recommender *recommend.Recommender
	store       *storage.Store
	logger      *slog.Logger
	now         func() time.Time

	mu            sync.RWMutex
	status        Status
	active        model.Model
	activeMetrics model.Metrics
	lastTrained   *time.Time
	datasetSize   int
}

// New creates an idle engine with explicit dependencies.
func New(synthesizer *synth.Synthesizer, trainer *model.Trainer, recommender *recommend.Recommender, store *storage.Store, logger *slog.Logger) *Engine {
	return &Engine{
		synthesizer: synthesizer,
		trainer:     trainer,
		recommender: recommender,
		store:       store,
		logger:      logger,
		now:         time.Now,
		status:      StatusIdle,
	}
}

// Restore loads the last persisted model and run metadata, if any, so
// the engine can serve predictions across restarts. A missing snapshot
// leaves the engine idle.
func (e *Engine) Restore() error {
	st, err := e.store.LoadModel()
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	if st == nil {
		return nil
	}

	m, err := model.FromState(*st)
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	run, err := e.store.LoadRun()
	if err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = m
	e.activeMetrics = st.Metrics
	e.status = StatusCompleted
	trainedAt := st.TrainedAt
	e.lastTrained = &trainedAt
	if run != nil {
		e.datasetSize = run.DatasetSize
	}

	e.logger.Info("restored model from disk", "kind", m.Kind(), "r_squared", st.Metrics.RSquared)
	return nil
}

// Train runs the full pipeline: synthesize a corpus, persist the
// snapshot, fit the ensemble, evaluate the heuristic baseline and
// persist run metadata. The active model is swapped only after the run
// fully succeeds; concurrent calls are rejected with
// ErrTrainingInProgress.
func (e *Engine) Train(datasetSize int, pool []energy.Customer, catalog []energy.Plan) (*Report, error) {
	e.mu.Lock()
	if e.status == StatusTraining {
		e.mu.Unlock()
		return nil, ErrTrainingInProgress
	}
	e.status = StatusTraining
	e.mu.Unlock()

	started := e.now()
	report, err := e.run(datasetSize, pool, catalog, started)
	if err != nil {
		e.mu.Lock()
		e.status = StatusFailed
		e.mu.Unlock()
		metrics.TrainingRuns.WithLabelValues(string(StatusFailed)).Inc()
		e.logger.Error("training run failed", "error", err)
		return nil, err
	}

	metrics.TrainingRuns.WithLabelValues(string(StatusCompleted)).Inc()
	metrics.SelectedModelRSquared.WithLabelValues(report.Winner.String()).Set(report.Metrics.RSquared)
	metrics.DatasetSize.Set(float64(report.DatasetSize))
	metrics.TrainingDurationSeconds.Set(report.Duration.Seconds())

	return report, nil
}

func (e *Engine) run(datasetSize int, pool []energy.Customer, catalog []energy.Plan, started time.Time) (*Report, error) {
	corpus := e.synthesizer.Generate(datasetSize, pool, catalog)

	if err := e.store.ReplaceCorpus(corpus); err != nil {
		return nil, err
	}

	result, err := e.trainer.TrainEnsemble(corpus)
	if err != nil {
		return nil, err
	}

	// The heuristic baseline is evaluated only for comparison; it is
	// never retained as the active predictor.
	baselineMetrics := model.Evaluate(model.Baseline{}, corpus)

	trainedAt := e.now()
	duration := trainedAt.Sub(started)

	run := storage.RunRecord{
		ID:          uuid.New().String(),
		TrainedAt:   trainedAt,
		Duration:    duration,
		DatasetSize: len(corpus),
		Winner:      result.Best.Kind(),
		Metrics:     result.BestMetrics,
		Candidates:  result.Candidates,
		Baseline:    baselineMetrics,
		FellBack:    result.FellBack,
		Host:        host.Capture(),
	}

	if err := e.store.SaveModel(model.Snapshot(result.Best, result.BestMetrics, trainedAt)); err != nil {
		return nil, err
	}
	if err := e.store.SaveRun(run); err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.active = result.Best
	e.activeMetrics = result.BestMetrics
	e.lastTrained = &trainedAt
	e.datasetSize = len(corpus)
	e.status = StatusCompleted
	e.mu.Unlock()

	e.logger.Info("training run completed",
		"run_id", run.ID,
		"winner", run.Winner,
		"r_squared", run.Metrics.RSquared,
		"baseline_r_squared", baselineMetrics.RSquared,
		"dataset_size", run.DatasetSize,
		"duration", duration,
	)

	return &Report{
		RunID:       run.ID,
		Winner:      run.Winner,
		Metrics:     run.Metrics,
		Candidates:  run.Candidates,
		Baseline:    baselineMetrics,
		FellBack:    run.FellBack,
		DatasetSize: run.DatasetSize,
		Duration:    duration,
	}, nil
}

// Predict serves one prediction from the active model.
func (e *Engine) Predict(f model.Features) (*Prediction, error) {
	e.mu.RLock()
	active := e.active
	rSquared := e.activeMetrics.RSquared
	e.mu.RUnlock()

	if active == nil {
		return nil, ErrModelNotTrained
	}

	return &Prediction{
		PredictedEnergyKwh: active.Predict(f),
		Confidence:         model.Confidence(rSquared),
		Model:              active.Kind(),
	}, nil
}

// Recommend ranks billing plans for a customer; independent of
// training state.
func (e *Engine) Recommend(customer energy.Customer, usage []energy.UsageRecord) (*recommend.Recommendation, error) {
	return e.recommender.Recommend(customer, usage)
}

// Analyze aggregates the persisted corpus snapshot into consumption
// patterns; independent of training state.
func (e *Engine) Analyze() (patterns.Summary, error) {
	corpus, err := e.store.LoadCorpus()
	if err != nil {
		return patterns.Summary{}, err
	}
	return patterns.Analyze(corpus), nil
}

// AnalyzeCorpus aggregates a caller-supplied corpus.
func (e *Engine) AnalyzeCorpus(corpus []energy.Observation) patterns.Summary {
	return patterns.Analyze(corpus)
}

// Status returns the engine's lifecycle state.
func (e *Engine) Status() StatusInfo {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return StatusInfo{
		Status:           e.status,
		LastTrainingDate: e.lastTrained,
		DatasetSize:      e.datasetSize,
	}
}

// ActiveModel returns the retained model's kind and metrics, or false
// when no training run has completed.
func (e *Engine) ActiveModel() (model.Kind, model.Metrics, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.active == nil {
		return "", model.Metrics{}, false
	}
	return e.active.Kind(), e.activeMetrics, true
}
