package model

import (
	"errors"
	"fmt"
	"time"
)

// Kind represents the type of regression candidate.
type Kind string

const (
	KindLinear     Kind = "linear"
	KindPolynomial Kind = "polynomial"
	KindHeuristic  Kind = "heuristic"
)

// IsValid checks if the kind is known.
func (k Kind) IsValid() bool {
	switch k {
	case KindLinear, KindPolynomial, KindHeuristic:
		return true
	}
	return false
}

// String returns string representation.
func (k Kind) String() string {
	return string(k)
}

// Feature names used for importance reporting and configuration.
const (
	FeatureTemperature   = "temperature"
	FeatureHourOfDay     = "hour_of_day"
	FeatureHouseholdSize = "household_size"
)

// ErrFitFailed signals that a candidate could not be fitted, because of
// a singular system or insufficient data. The ensemble trainer recovers
// from it locally; it is never surfaced to callers.
var ErrFitFailed = errors.New("model fit failed")

// Features is the input to a single prediction. Linear models use all
// three fields; the polynomial model uses temperature and hour only.
type Features struct {
	Temperature   float64 `json:"temperature"`
	HourOfDay     int     `json:"hour_of_day"`
	HouseholdSize int     `json:"household_size"`
}

// Model is a fitted regression candidate.
type Model interface {
	// Kind returns the candidate type.
	Kind() Kind

	// Predict returns the predicted consumption in kWh.
	Predict(f Features) float64

	// FeatureImportance maps feature name to absolute weight. Only the
	// linear candidate reports importance; others return nil.
	FeatureImportance() map[string]float64
}

// State is the serializable form of a fitted model, persisted after a
// completed training run and restored on startup.
type State struct {
	Kind         Kind      `json:"kind"`
	Coefficients []float64 `json:"coefficients"`
	Metrics      Metrics   `json:"metrics"`
	TrainedAt    time.Time `json:"trained_at"`
}

// FromState reconstructs a fitted model from its serialized form.
func FromState(st State) (Model, error) {
	switch st.Kind {
	case KindLinear:
		if len(st.Coefficients) != 1+len(linearFeatures) {
			return nil, fmt.Errorf("linear state has %d coefficients, want %d", len(st.Coefficients), 1+len(linearFeatures))
		}
		return &Linear{Coefficients: st.Coefficients}, nil
	case KindPolynomial:
		if len(st.Coefficients) != polynomialTerms {
			return nil, fmt.Errorf("polynomial state has %d coefficients, want %d", len(st.Coefficients), polynomialTerms)
		}
		return &Polynomial{Coefficients: st.Coefficients}, nil
	case KindHeuristic:
		return Baseline{}, nil
	default:
		return nil, fmt.Errorf("unknown model kind: %s", st.Kind)
	}
}

// Snapshot captures the serializable form of a fitted model.
func Snapshot(m Model, metrics Metrics, trainedAt time.Time) State {
	st := State{
		Kind:      m.Kind(),
		Metrics:   metrics,
		TrainedAt: trainedAt,
	}
	switch v := m.(type) {
	case *Linear:
		st.Coefficients = v.Coefficients
	case *Polynomial:
		st.Coefficients = v.Coefficients
	}
	return st
}
