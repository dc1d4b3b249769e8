// Package metrics exposes Prometheus collectors for the forecasting
// pipeline. Collectors are registered on the default registry and
// served by the `serve` command.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TrainingRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wattwise_training_runs_total",
		Help: "Total number of training runs by terminal status.",
	}, []string{"status"})

	PolynomialFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wattwise_polynomial_fallbacks_total",
		Help: "Training runs where the polynomial fit failed and the linear candidate was used instead.",
	})

	SelectedModelRSquared = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "wattwise_selected_model_r_squared",
		Help: "R-squared of the model retained by the last completed training run.",
	}, []string{"model"})

	DatasetSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wattwise_dataset_size",
		Help: "Number of observations in the current corpus snapshot.",
	})

	TrainingDurationSeconds = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wattwise_training_duration_seconds",
		Help: "Wall-clock duration of the last training run.",
	})
)
