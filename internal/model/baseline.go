package model

import "github.com/wattwise/wattwise/internal/energy"

// Baseline is a fixed closed-form heuristic used only as a comparison
// reference during training runs. It is not fitted against the corpus
// and is never selected as the active predictor.
type Baseline struct{}

// Kind returns the candidate type.
func (Baseline) Kind() Kind {
	return KindHeuristic
}

// Predict returns a rule-of-thumb consumption estimate: a flat base
// adjusted for temperature, household size and the hour bucket.
func (Baseline) Predict(f Features) float64 {
	kwh := 18.0 + 0.25*f.Temperature + 2.0*float64(f.HouseholdSize)

	switch {
	case energy.IsPeakHour(f.HourOfDay):
		kwh += 14.0
	case energy.IsOvernightHour(f.HourOfDay):
		kwh -= 8.0
	}

	if kwh < 0 {
		kwh = 0
	}
	return kwh
}

// FeatureImportance returns nil: the heuristic has no fitted weights.
func (Baseline) FeatureImportance() map[string]float64 {
	return nil
}
