package recommend

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/wattwise/wattwise/internal/energy"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func history(usageCost ...float64) []energy.UsageRecord {
	records := make([]energy.UsageRecord, 0, len(usageCost)/2)
	for i := 0; i+1 < len(usageCost); i += 2 {
		records = append(records, energy.UsageRecord{
			EnergyConsumptionKwh: usageCost[i],
			Cost:                 usageCost[i+1],
		})
	}
	return records
}

func TestRecommend_EmptyHistory(t *testing.T) {
	r := New(nil, testLogger())
	_, err := r.Recommend(energy.Customer{}, nil)
	if !errors.Is(err, ErrInsufficientHistory) {
		t.Fatalf("expected ErrInsufficientHistory, got %v", err)
	}
}

func TestRecommend_Averages(t *testing.T) {
	r := New(nil, testLogger())
	rec, err := r.Recommend(energy.Customer{}, history(20, 30, 40, 50, 60, 70))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(rec.CurrentUsageKwh-40) > 1e-9 {
		t.Errorf("avg usage = %f, want 40", rec.CurrentUsageKwh)
	}
	if rec.PeakUsageKwh != 60 {
		t.Errorf("peak usage = %f, want 60", rec.PeakUsageKwh)
	}
	if len(rec.AllOptions) != 4 {
		t.Errorf("expected all 4 default plans scored, got %d", len(rec.AllOptions))
	}
}

func TestRecommend_MonthlyCost(t *testing.T) {
	catalog := []energy.Plan{{Name: "Only", RatePerKwh: 0.2, FixedFee: 15, UsageCapKwh: 100}}
	r := New(catalog, testLogger())

	rec, err := r.Recommend(energy.Customer{}, history(50, 25))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := 50*0.2 + 15
	if math.Abs(rec.RecommendedPlan.MonthlyCost-want) > 1e-9 {
		t.Errorf("monthly cost = %f, want %f", rec.RecommendedPlan.MonthlyCost, want)
	}
	if math.Abs(rec.RecommendedPlan.SavingsPotential-(25-want)) > 1e-9 {
		t.Errorf("savings = %f, want %f", rec.RecommendedPlan.SavingsPotential, 25-want)
	}
}

func TestRecommend_SolarBonusForGreen(t *testing.T) {
	r := New(nil, testLogger())
	usage := history(45, 60)

	withSolar, err := r.Recommend(energy.Customer{HasSolar: true}, usage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withoutSolar, err := r.Recommend(energy.Customer{}, usage)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	greenScore := func(rec *Recommendation) float64 {
		for _, opt := range rec.AllOptions {
			if opt.Plan.Name == "Green" {
				return opt.Suitability
			}
		}
		t.Fatal("green plan not scored")
		return 0
	}

	diff := greenScore(withSolar) - greenScore(withoutSolar)
	if math.Abs(diff-30) > 1e-9 {
		t.Errorf("solar bonus = %f, want 30", diff)
	}
}

func TestRecommend_IncomePreferences(t *testing.T) {
	r := New(nil, testLogger())
	usage := history(45, 60)

	planScore := func(income energy.IncomeLevel, plan string) float64 {
		rec, err := r.Recommend(energy.Customer{Income: income}, usage)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, opt := range rec.AllOptions {
			if opt.Plan.Name == plan {
				return opt.Suitability
			}
		}
		t.Fatalf("plan %s not scored", plan)
		return 0
	}

	if diff := planScore(energy.IncomeHigh, "Premium") - planScore(energy.IncomeMedium, "Premium"); math.Abs(diff-20) > 1e-9 {
		t.Errorf("high income premium bonus = %f, want 20", diff)
	}
	if diff := planScore(energy.IncomeLow, "Basic") - planScore(energy.IncomeMedium, "Basic"); math.Abs(diff-20) > 1e-9 {
		t.Errorf("low income basic bonus = %f, want 20", diff)
	}
}

func TestRecommend_SuitabilityCapped(t *testing.T) {
	// Tiny usage and cheap plan maximize every term; the total must
	// still not exceed 100.
	catalog := []energy.Plan{{Name: "Green", RatePerKwh: 0.01, FixedFee: 0, UsageCapKwh: 100}}
	r := New(catalog, testLogger())

	rec, err := r.Recommend(energy.Customer{HasSolar: true}, history(1, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.RecommendedPlan.Suitability > 100 {
		t.Errorf("suitability %f exceeds cap", rec.RecommendedPlan.Suitability)
	}
}

func TestRecommend_CompatibilityTag(t *testing.T) {
	catalog := []energy.Plan{
		{Name: "Tight", RatePerKwh: 0.1, FixedFee: 5, UsageCapKwh: 10},
		{Name: "Roomy", RatePerKwh: 0.1, FixedFee: 5, UsageCapKwh: 100},
	}
	r := New(catalog, testLogger())

	rec, err := r.Recommend(energy.Customer{}, history(50, 40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, opt := range rec.AllOptions {
		switch opt.Plan.Name {
		case "Tight":
			if opt.Compatibility != TagOverUsage {
				t.Errorf("tight plan tag = %s, want %s", opt.Compatibility, TagOverUsage)
			}
		case "Roomy":
			if opt.Compatibility != TagCompatible {
				t.Errorf("roomy plan tag = %s, want %s", opt.Compatibility, TagCompatible)
			}
		}
	}
}

func TestRecommend_TieBreakByCost(t *testing.T) {
	// Same cap and rate structure, different fixed fee: identical
	// usage term, lower cost scores at least as high and wins ties.
	catalog := []energy.Plan{
		{Name: "Pricey", RatePerKwh: 0.1, FixedFee: 310, UsageCapKwh: 100},
		{Name: "Cheap", RatePerKwh: 0.1, FixedFee: 300, UsageCapKwh: 100},
	}
	// Both monthly costs exceed 300, zeroing the cost term for each.
	r := New(catalog, testLogger())

	rec, err := r.Recommend(energy.Customer{}, history(50, 40))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.AllOptions[0].Suitability != rec.AllOptions[1].Suitability {
		t.Fatalf("expected a suitability tie, got %f vs %f",
			rec.AllOptions[0].Suitability, rec.AllOptions[1].Suitability)
	}
	if rec.RecommendedPlan.Plan.Name != "Cheap" {
		t.Errorf("expected cheaper monthly cost to win the tie, got %s", rec.RecommendedPlan.Plan.Name)
	}
}

func TestRecommend_Reasoning(t *testing.T) {
	r := New(nil, testLogger())

	rec, err := r.Recommend(energy.Customer{HasSolar: true}, history(20, 500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(rec.Reasoning, "low") {
		t.Errorf("expected low-usage comment in reasoning: %q", rec.Reasoning)
	}
	if rec.RecommendedPlan.SavingsPotential > 0 && !strings.Contains(rec.Reasoning, "save") {
		t.Errorf("expected savings mention in reasoning: %q", rec.Reasoning)
	}
	if rec.RecommendedPlan.Plan.Name == "Green" && !strings.Contains(rec.Reasoning, "carbon") {
		t.Errorf("expected environmental note for green plan: %q", rec.Reasoning)
	}
}
