package model

import (
	"fmt"
	"log/slog"

	"github.com/wattwise/wattwise/internal/energy"
	"github.com/wattwise/wattwise/internal/metrics"
)

// Candidate pairs a fitted candidate kind with its evaluation scores.
type Candidate struct {
	Kind    Kind    `json:"kind"`
	Metrics Metrics `json:"metrics"`
}

// Result is the outcome of one ensemble training pass.
type Result struct {
	Best        Model
	BestMetrics Metrics
	Candidates  []Candidate

	// FellBack is set when the polynomial fit failed and the linear
	// candidate won by default.
	FellBack bool
}

// Trainer fits the competing regression candidates and selects the
// best performer.
type Trainer struct {
	logger *slog.Logger
}

// NewTrainer creates an ensemble trainer.
func NewTrainer(logger *slog.Logger) *Trainer {
	return &Trainer{logger: logger}
}

// TrainEnsemble fits the linear and polynomial candidates against the
// corpus, scores both, and retains the one with the higher R-squared.
// Ties prefer the linear candidate. A polynomial fit failure is
// absorbed: the linear result stands and a fallback signal is emitted.
func (t *Trainer) TrainEnsemble(corpus []energy.Observation) (*Result, error) {
	linear, err := FitLinear(corpus)
	if err != nil {
		return nil, fmt.Errorf("train ensemble: %w", err)
	}
	linearMetrics := Evaluate(linear, corpus)

	result := &Result{
		Best:        linear,
		BestMetrics: linearMetrics,
		Candidates:  []Candidate{{Kind: KindLinear, Metrics: linearMetrics}},
	}

	poly, err := FitPolynomial(corpus)
	if err != nil {
		t.logger.Warn("polynomial fit failed, falling back to linear candidate", "error", err)
		metrics.PolynomialFallbacks.Inc()
		result.FellBack = true
		return result, nil
	}

	polyMetrics := Evaluate(poly, corpus)
	result.Candidates = append(result.Candidates, Candidate{Kind: KindPolynomial, Metrics: polyMetrics})

	if polyMetrics.RSquared > linearMetrics.RSquared {
		result.Best = poly
		result.BestMetrics = polyMetrics
	}

	t.logger.Info("ensemble training complete",
		"selected", result.Best.Kind(),
		"r_squared", result.BestMetrics.RSquared,
		"candidates", len(result.Candidates),
	)

	return result, nil
}
