package model

import (
	"math"
	"testing"

	"github.com/wattwise/wattwise/internal/energy"
)

// linearCorpus builds observations following kwh = 2 + 0.5*t + 1.5*h + 3*hh
// exactly, so the fit should recover the relationship.
func linearCorpus() []energy.Observation {
	var corpus []energy.Observation
	for t := 0; t < 5; t++ {
		for h := 0; h < 24; h += 3 {
			for hh := 1; hh <= 4; hh++ {
				temp := float64(t * 7)
				kwh := 2 + 0.5*temp + 1.5*float64(h) + 3*float64(hh)
				corpus = append(corpus, energy.Observation{
					Temperature:          temp,
					HourOfDay:            h,
					HouseholdSize:        hh,
					EnergyConsumptionKwh: kwh,
				})
			}
		}
	}
	return corpus
}

func TestFitLinear_RecoversRelationship(t *testing.T) {
	m, err := FitLinear(linearCorpus())
	if err != nil {
		t.Fatalf("unexpected fit error: %v", err)
	}

	predicted := m.Predict(Features{Temperature: 21, HourOfDay: 12, HouseholdSize: 2})
	expected := 2 + 0.5*21 + 1.5*12 + 3*2
	if math.Abs(predicted-expected) > 0.1 {
		t.Errorf("predicted %f, want %f", predicted, expected)
	}
}

func TestFitLinear_InsufficientData(t *testing.T) {
	corpus := []energy.Observation{
		{Temperature: 10, HourOfDay: 5, HouseholdSize: 2, EnergyConsumptionKwh: 12},
	}
	if _, err := FitLinear(corpus); err == nil {
		t.Fatal("expected fit error for a single observation")
	}
}

func TestLinear_Kind(t *testing.T) {
	m := &Linear{Coefficients: []float64{0, 0, 0, 0}}
	if m.Kind() != KindLinear {
		t.Errorf("expected kind linear, got %s", m.Kind())
	}
}

func TestLinear_FeatureImportance(t *testing.T) {
	m := &Linear{Coefficients: []float64{1, -0.5, 1.5, 3}}
	importance := m.FeatureImportance()

	want := map[string]float64{
		FeatureTemperature:   0.5,
		FeatureHourOfDay:     1.5,
		FeatureHouseholdSize: 3,
	}
	for name, value := range want {
		if math.Abs(importance[name]-value) > 1e-9 {
			t.Errorf("importance[%s] = %f, want %f", name, importance[name], value)
		}
	}
}
