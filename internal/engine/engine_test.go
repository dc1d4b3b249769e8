package engine

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/wattwise/wattwise/internal/energy"
	"github.com/wattwise/wattwise/internal/model"
	"github.com/wattwise/wattwise/internal/recommend"
	"github.com/wattwise/wattwise/internal/storage"
	"github.com/wattwise/wattwise/internal/synth"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := storage.New(t.TempDir(), logger)
	return New(
		synth.New(42, logger),
		model.NewTrainer(logger),
		recommend.New(nil, logger),
		store,
		logger,
	)
}

func TestEngine_PredictBeforeTrain(t *testing.T) {
	e := testEngine(t)

	_, err := e.Predict(model.Features{Temperature: 20, HourOfDay: 10, HouseholdSize: 2})
	if !errors.Is(err, ErrModelNotTrained) {
		t.Fatalf("expected ErrModelNotTrained, got %v", err)
	}
}

func TestEngine_InitialStatus(t *testing.T) {
	e := testEngine(t)

	info := e.Status()
	if info.Status != StatusIdle {
		t.Errorf("expected idle, got %s", info.Status)
	}
	if info.LastTrainingDate != nil || info.DatasetSize != 0 {
		t.Errorf("expected empty status, got %+v", info)
	}
}

func TestEngine_EndToEnd(t *testing.T) {
	e := testEngine(t)

	report, err := e.Train(1000, nil, nil)
	if err != nil {
		t.Fatalf("training failed: %v", err)
	}

	if report.DatasetSize != 1000 {
		t.Errorf("dataset size = %d, want 1000", report.DatasetSize)
	}
	if !report.Winner.IsValid() || report.Winner == model.KindHeuristic {
		t.Errorf("unexpected winner %s", report.Winner)
	}
	if len(report.Candidates) == 0 {
		t.Error("expected candidate metrics in report")
	}

	info := e.Status()
	if info.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", info.Status)
	}
	if info.LastTrainingDate == nil {
		t.Error("expected last training date to be set")
	}
	if info.DatasetSize != 1000 {
		t.Errorf("status dataset size = %d, want 1000", info.DatasetSize)
	}

	prediction, err := e.Predict(model.Features{Temperature: 25, HourOfDay: 19, HouseholdSize: 4})
	if err != nil {
		t.Fatalf("predict failed: %v", err)
	}
	if prediction.PredictedEnergyKwh <= 0 || prediction.PredictedEnergyKwh > 200 {
		t.Errorf("prediction %f outside plausible range", prediction.PredictedEnergyKwh)
	}
	if prediction.Confidence < 0 || prediction.Confidence > 0.95 {
		t.Errorf("confidence %f outside [0, 0.95]", prediction.Confidence)
	}
}

func TestEngine_SingleFlightGuard(t *testing.T) {
	e := testEngine(t)

	e.mu.Lock()
	e.status = StatusTraining
	e.mu.Unlock()

	_, err := e.Train(100, nil, nil)
	if !errors.Is(err, ErrTrainingInProgress) {
		t.Fatalf("expected ErrTrainingInProgress, got %v", err)
	}
}

func TestEngine_BaselineEvaluatedNotRetained(t *testing.T) {
	e := testEngine(t)

	report, err := e.Train(500, nil, nil)
	if err != nil {
		t.Fatalf("training failed: %v", err)
	}

	if report.Baseline == (model.Metrics{}) {
		t.Error("expected baseline metrics in report")
	}

	kind, _, ok := e.ActiveModel()
	if !ok {
		t.Fatal("expected an active model")
	}
	if kind == model.KindHeuristic {
		t.Error("heuristic baseline must never be the active model")
	}
}

func TestEngine_AnalyzeIndependentOfTraining(t *testing.T) {
	e := testEngine(t)

	// Before any training the corpus snapshot is empty.
	summary, err := e.Analyze()
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if summary.Hourly[8].Samples != 0 {
		t.Error("expected empty summary before training")
	}

	if _, err := e.Train(300, nil, nil); err != nil {
		t.Fatalf("training failed: %v", err)
	}

	summary, err = e.Analyze()
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	var total int
	for _, bucket := range summary.Hourly {
		total += bucket.Samples
	}
	if total != 300 {
		t.Errorf("hourly samples = %d, want 300", total)
	}
}

func TestEngine_RecommendIndependentOfTraining(t *testing.T) {
	e := testEngine(t)

	rec, err := e.Recommend(energy.Customer{HasSolar: true}, []energy.UsageRecord{
		{EnergyConsumptionKwh: 35, Cost: 60},
	})
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if rec.RecommendedPlan.Plan.Name == "" {
		t.Error("expected a recommended plan")
	}

	_, err = e.Recommend(energy.Customer{}, nil)
	if !errors.Is(err, recommend.ErrInsufficientHistory) {
		t.Fatalf("expected ErrInsufficientHistory, got %v", err)
	}
}

func TestEngine_RestoreAcrossInstances(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()
	store := storage.New(dir, logger)

	first := New(synth.New(7, logger), model.NewTrainer(logger), recommend.New(nil, logger), store, logger)
	if _, err := first.Train(400, nil, nil); err != nil {
		t.Fatalf("training failed: %v", err)
	}
	want, err := first.Predict(model.Features{Temperature: 20, HourOfDay: 8, HouseholdSize: 3})
	if err != nil {
		t.Fatal(err)
	}

	second := New(synth.New(7, logger), model.NewTrainer(logger), recommend.New(nil, logger), store, logger)
	if err := second.Restore(); err != nil {
		t.Fatalf("restore failed: %v", err)
	}

	if second.Status().Status != StatusCompleted {
		t.Errorf("restored status = %s, want completed", second.Status().Status)
	}

	got, err := second.Predict(model.Features{Temperature: 20, HourOfDay: 8, HouseholdSize: 3})
	if err != nil {
		t.Fatalf("predict after restore failed: %v", err)
	}
	if got.PredictedEnergyKwh != want.PredictedEnergyKwh {
		t.Errorf("restored prediction %f differs from original %f", got.PredictedEnergyKwh, want.PredictedEnergyKwh)
	}
}

func TestEngine_RestoreWithoutSnapshot(t *testing.T) {
	e := testEngine(t)
	if err := e.Restore(); err != nil {
		t.Fatalf("restore on empty store should be a no-op, got %v", err)
	}
	if e.Status().Status != StatusIdle {
		t.Errorf("expected idle after empty restore, got %s", e.Status().Status)
	}
}

func TestEngine_FailedRunSetsStatus(t *testing.T) {
	// A dataset too small for the linear fit fails the run after the
	// synthesis stage.
	e := testEngine(t)

	_, err := e.Train(2, nil, nil)
	if err == nil {
		t.Fatal("expected training failure for tiny dataset")
	}
	if e.Status().Status != StatusFailed {
		t.Errorf("status = %s, want failed", e.Status().Status)
	}

	// A later run can still succeed.
	if _, err := e.Train(500, nil, nil); err != nil {
		t.Fatalf("follow-up training failed: %v", err)
	}
	if e.Status().Status != StatusCompleted {
		t.Errorf("status = %s, want completed", e.Status().Status)
	}
}
