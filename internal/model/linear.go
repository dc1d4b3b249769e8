package model

import (
	"fmt"
	"math"

	"github.com/sajari/regression"

	"github.com/wattwise/wattwise/internal/energy"
)

var linearFeatures = []string{FeatureTemperature, FeatureHourOfDay, FeatureHouseholdSize}

// Linear is a multivariate linear regression of consumption on
// temperature, hour of day and household size.
// Prediction: kwh = c0 + c1*temperature + c2*hour + c3*household.
type Linear struct {
	// Coefficients[0] is the intercept; the remainder follow
	// linearFeatures order.
	Coefficients []float64 `json:"coefficients"`
}

// FitLinear fits the linear candidate against the corpus using ordinary
// least squares.
func FitLinear(corpus []energy.Observation) (*Linear, error) {
	if len(corpus) < len(linearFeatures)+1 {
		return nil, fmt.Errorf("%w: %d observations for %d features", ErrFitFailed, len(corpus), len(linearFeatures))
	}

	r := new(regression.Regression)
	r.SetObserved("energy_consumption_kwh")
	for i, name := range linearFeatures {
		r.SetVar(i, name)
	}

	for _, obs := range corpus {
		r.Train(regression.DataPoint(obs.EnergyConsumptionKwh, []float64{
			obs.Temperature,
			float64(obs.HourOfDay),
			float64(obs.HouseholdSize),
		}))
	}

	if err := r.Run(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFitFailed, err)
	}

	coeffs := r.GetCoeffs()
	if len(coeffs) != len(linearFeatures)+1 {
		return nil, fmt.Errorf("%w: solver returned %d coefficients", ErrFitFailed, len(coeffs))
	}

	return &Linear{Coefficients: coeffs}, nil
}

// Kind returns the candidate type.
func (m *Linear) Kind() Kind {
	return KindLinear
}

// Predict returns the predicted consumption in kWh.
func (m *Linear) Predict(f Features) float64 {
	return m.Coefficients[0] +
		m.Coefficients[1]*f.Temperature +
		m.Coefficients[2]*float64(f.HourOfDay) +
		m.Coefficients[3]*float64(f.HouseholdSize)
}

// FeatureImportance maps each feature to the absolute value of its
// coefficient.
func (m *Linear) FeatureImportance() map[string]float64 {
	importance := make(map[string]float64, len(linearFeatures))
	for i, name := range linearFeatures {
		importance[name] = math.Abs(m.Coefficients[i+1])
	}
	return importance
}
