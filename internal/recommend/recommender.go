// Package recommend scores billing plans against a customer's usage
// history and preferences.
package recommend

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/wattwise/wattwise/internal/energy"
)

// ErrInsufficientHistory signals that a recommendation was requested
// with no usage history; at least one record is required.
var ErrInsufficientHistory = errors.New("usage history is empty")

// Compatibility tags for a scored plan.
const (
	TagCompatible = "Compatible"
	TagOverUsage  = "Over Usage"
)

// PlanScore is one catalog plan evaluated against the customer.
type PlanScore struct {
	Plan             energy.Plan `json:"plan"`
	MonthlyCost      float64     `json:"monthly_cost"`
	Suitability      float64     `json:"suitability"`
	SavingsPotential float64     `json:"savings_potential"`
	Compatibility    string      `json:"compatibility"`
}

// Recommendation is the ranked outcome for one customer.
type Recommendation struct {
	CurrentUsageKwh float64     `json:"current_usage_kwh"`
	PeakUsageKwh    float64     `json:"peak_usage_kwh"`
	RecommendedPlan PlanScore   `json:"recommended_plan"`
	AllOptions      []PlanScore `json:"all_options"`
	Reasoning       string      `json:"reasoning"`
}

// Recommender ranks a plan catalog for customers. It runs
// independently of training state.
type Recommender struct {
	catalog []energy.Plan
	logger  *slog.Logger
}

// New creates a Recommender over the given catalog; an empty catalog
// falls back to the defaults.
func New(catalog []energy.Plan, logger *slog.Logger) *Recommender {
	return &Recommender{
		catalog: energy.ValidCatalog(catalog),
		logger:  logger,
	}
}

// Recommend scores every catalog plan against the customer's history
// and preferences and returns the ranked result.
func (r *Recommender) Recommend(customer energy.Customer, history []energy.UsageRecord) (*Recommendation, error) {
	if len(history) == 0 {
		return nil, ErrInsufficientHistory
	}

	var usageSum, costSum, peak float64
	for _, rec := range history {
		usageSum += rec.EnergyConsumptionKwh
		costSum += rec.Cost
		if rec.EnergyConsumptionKwh > peak {
			peak = rec.EnergyConsumptionKwh
		}
	}
	n := float64(len(history))
	avgUsage := usageSum / n
	avgCost := costSum / n

	options := make([]PlanScore, 0, len(r.catalog))
	for _, plan := range r.catalog {
		options = append(options, r.score(plan, customer, avgUsage, avgCost))
	}

	// Rank by suitability, cheaper plan wins ties.
	sort.SliceStable(options, func(i, j int) bool {
		if options[i].Suitability != options[j].Suitability {
			return options[i].Suitability > options[j].Suitability
		}
		return options[i].MonthlyCost < options[j].MonthlyCost
	})

	top := options[0]
	rec := &Recommendation{
		CurrentUsageKwh: avgUsage,
		PeakUsageKwh:    peak,
		RecommendedPlan: top,
		AllOptions:      options,
		Reasoning:       reasoning(top, avgUsage),
	}

	r.logger.Debug("plan recommendation computed",
		"customer", customer.ID,
		"plan", top.Plan.Name,
		"suitability", top.Suitability,
	)

	return rec, nil
}

// score computes the 0-100 suitability of one plan: usage fit (40),
// cost efficiency (30) and stated preferences (30), additive and
// capped.
func (r *Recommender) score(plan energy.Plan, customer energy.Customer, avgUsage, avgCost float64) PlanScore {
	monthlyCost := avgUsage*plan.RatePerKwh + plan.FixedFee

	var suitability float64
	if avgUsage <= plan.UsageCapKwh {
		suitability += 40
	} else {
		suitability += max(0, 40-(avgUsage-plan.UsageCapKwh))
	}

	suitability += max(0, 30-monthlyCost/10)

	if customer.HasSolar && plan.Name == "Green" {
		suitability += 30
	}
	if customer.Income == energy.IncomeHigh && plan.Name == "Premium" {
		suitability += 20
	}
	if customer.Income == energy.IncomeLow && plan.Name == "Basic" {
		suitability += 20
	}

	if suitability > 100 {
		suitability = 100
	}

	compatibility := TagCompatible
	if avgUsage > plan.UsageCapKwh {
		compatibility = TagOverUsage
	}

	return PlanScore{
		Plan:             plan,
		MonthlyCost:      monthlyCost,
		Suitability:      suitability,
		SavingsPotential: avgCost - monthlyCost,
		Compatibility:    compatibility,
	}
}

func reasoning(top PlanScore, avgUsage float64) string {
	var parts []string

	if top.SavingsPotential > 0 {
		parts = append(parts, fmt.Sprintf("Switching could save around %.2f per month.", top.SavingsPotential))
	}

	switch {
	case avgUsage <= 30:
		parts = append(parts, "Your usage is low, so a lean plan fits well.")
	case avgUsage <= 50:
		parts = append(parts, "Your usage is medium, matching the mid-tier plans.")
	default:
		parts = append(parts, "Your usage is high; a plan with a generous cap avoids overage.")
	}

	if top.Plan.Name == "Green" {
		parts = append(parts, "The Green plan also reduces your carbon footprint.")
	}

	return strings.Join(parts, " ")
}
