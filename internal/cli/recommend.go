package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wattwise/wattwise/internal/energy"
	"github.com/wattwise/wattwise/internal/recommend"
)

var (
	recommendHistory string
	recommendSolar   bool
	recommendIncome  string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a billing plan from usage history",
	Long: `Score the plan catalog against a customer's usage history and print
the ranked recommendation.

The history file is a JSON array of records:
  [{"energy_consumption_kwh": 35.2, "cost": 58.1}, ...]

Examples:
  wattwise recommend --history usage.json --solar --income High`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendHistory, "history", "", "path to usage history JSON (required)")
	recommendCmd.Flags().BoolVar(&recommendSolar, "solar", false, "customer has solar panels")
	recommendCmd.Flags().StringVar(&recommendIncome, "income", "", "income bracket: Low, Medium or High")
	recommendCmd.MarkFlagRequired("history")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(recommendHistory)
	if err != nil {
		return fmt.Errorf("failed to read history file: %w", err)
	}

	var history []energy.UsageRecord
	if err := json.Unmarshal(data, &history); err != nil {
		return fmt.Errorf("failed to parse history file: %w", err)
	}

	cfg := loadConfig()
	log := buildLogger(cfg)
	eng, _ := buildEngine(cfg, log)

	customer := energy.Customer{
		HasSolar: recommendSolar,
		Income:   energy.IncomeLevel(recommendIncome),
	}

	rec, err := eng.Recommend(customer, history)
	if errors.Is(err, recommend.ErrInsufficientHistory) {
		return fmt.Errorf("history file contains no records")
	}
	if err != nil {
		return err
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(rec)
	}

	fmt.Println("=== Plan Recommendation ===")
	fmt.Printf("Average usage: %.1f kWh  (peak %.1f kWh)\n\n", rec.CurrentUsageKwh, rec.PeakUsageKwh)
	top := rec.RecommendedPlan
	fmt.Printf("Recommended:   %s\n", top.Plan.Name)
	fmt.Printf("Monthly cost:  %.2f\n", top.MonthlyCost)
	fmt.Printf("Suitability:   %.0f/100\n", top.Suitability)
	fmt.Printf("Savings:       %.2f\n", top.SavingsPotential)
	fmt.Printf("Compatibility: %s\n\n", top.Compatibility)
	fmt.Println(rec.Reasoning)

	fmt.Println("\nAll options:")
	for _, opt := range rec.AllOptions {
		fmt.Printf("  %-10s suitability=%3.0f cost=%7.2f %s\n",
			opt.Plan.Name, opt.Suitability, opt.MonthlyCost, opt.Compatibility)
	}

	return nil
}
