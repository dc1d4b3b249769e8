package model

import (
	"math"

	"github.com/wattwise/wattwise/internal/energy"
)

// Metrics holds evaluation scores for one fitted candidate.
type Metrics struct {
	MSE float64 `json:"mse"`
	MAE float64 `json:"mae"`

	// RSquared may be negative for a worse-than-mean fit. Callers must
	// tolerate that; it is never clamped here.
	RSquared float64 `json:"r_squared"`

	// AccuracyPercent is RSquared * 100, informational only.
	AccuracyPercent float64 `json:"accuracy_percent"`
}

// Evaluate scores a model's predictions against the actual consumption
// in the corpus.
func Evaluate(m Model, corpus []energy.Observation) Metrics {
	if len(corpus) == 0 {
		return Metrics{}
	}

	var actualSum float64
	for _, obs := range corpus {
		actualSum += obs.EnergyConsumptionKwh
	}
	actualMean := actualSum / float64(len(corpus))

	var sse, sae, sst float64
	for _, obs := range corpus {
		predicted := m.Predict(Features{
			Temperature:   obs.Temperature,
			HourOfDay:     obs.HourOfDay,
			HouseholdSize: obs.HouseholdSize,
		})
		residual := obs.EnergyConsumptionKwh - predicted
		sse += residual * residual
		sae += math.Abs(residual)

		dev := obs.EnergyConsumptionKwh - actualMean
		sst += dev * dev
	}

	n := float64(len(corpus))
	metrics := Metrics{
		MSE: sse / n,
		MAE: sae / n,
	}

	if sst > 0 {
		metrics.RSquared = 1 - sse/sst
	} else if sse > 0 {
		// Constant actuals that the model misses: worse than the mean.
		metrics.RSquared = -1
	} else {
		metrics.RSquared = 1
	}
	metrics.AccuracyPercent = metrics.RSquared * 100

	return metrics
}

// Confidence derives a single-prediction confidence from the model's
// fit quality. A negative value signals a degenerate model and is
// surfaced as-is rather than clamped to zero.
func Confidence(rSquared float64) float64 {
	return math.Min(0.95, rSquared+0.3)
}
