package model

import (
	"errors"
	"math"
	"testing"

	"github.com/wattwise/wattwise/internal/energy"
)

// quadraticCorpus builds observations following
// kwh = 3 + 0.2*t + 0.5*h + 0.04*t^2 + 0.1*h^2 + 0.05*t*h.
func quadraticCorpus() []energy.Observation {
	var corpus []energy.Observation
	for t := -5; t <= 30; t += 5 {
		for h := 0; h < 24; h += 2 {
			temp := float64(t)
			hour := float64(h)
			kwh := 3 + 0.2*temp + 0.5*hour + 0.04*temp*temp + 0.1*hour*hour + 0.05*temp*hour
			corpus = append(corpus, energy.Observation{
				Temperature:          temp,
				HourOfDay:            h,
				EnergyConsumptionKwh: kwh,
			})
		}
	}
	return corpus
}

func TestFitPolynomial_RecoversRelationship(t *testing.T) {
	m, err := FitPolynomial(quadraticCorpus())
	if err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}

	temp, hour := 18.0, 19
	expected := 3 + 0.2*temp + 0.5*float64(hour) + 0.04*temp*temp + 0.1*float64(hour*hour) + 0.05*temp*float64(hour)
	predicted := m.Predict(Features{Temperature: temp, HourOfDay: hour})
	if math.Abs(predicted-expected) > 0.5 {
		t.Errorf("predicted %f, want %f", predicted, expected)
	}
}

func TestFitPolynomial_IgnoresHouseholdSize(t *testing.T) {
	m, err := FitPolynomial(quadraticCorpus())
	if err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}

	a := m.Predict(Features{Temperature: 20, HourOfDay: 8, HouseholdSize: 1})
	b := m.Predict(Features{Temperature: 20, HourOfDay: 8, HouseholdSize: 6})
	if a != b {
		t.Errorf("household size changed polynomial prediction: %f vs %f", a, b)
	}
}

func TestFitPolynomial_InsufficientData(t *testing.T) {
	corpus := quadraticCorpus()[:polynomialTerms-1]
	_, err := FitPolynomial(corpus)
	if !errors.Is(err, ErrFitFailed) {
		t.Fatalf("expected ErrFitFailed, got %v", err)
	}
}

func TestFitPolynomial_SingularSystem(t *testing.T) {
	// Identical rows make the normal equations rank deficient.
	var corpus []energy.Observation
	for i := 0; i < 20; i++ {
		corpus = append(corpus, energy.Observation{
			Temperature:          10,
			HourOfDay:            8,
			EnergyConsumptionKwh: 30,
		})
	}

	_, err := FitPolynomial(corpus)
	if !errors.Is(err, ErrFitFailed) {
		t.Fatalf("expected ErrFitFailed for singular system, got %v", err)
	}
}

func TestPolynomial_FeatureImportanceNil(t *testing.T) {
	m := &Polynomial{Coefficients: make([]float64, polynomialTerms)}
	if m.FeatureImportance() != nil {
		t.Error("expected nil feature importance for polynomial")
	}
}
