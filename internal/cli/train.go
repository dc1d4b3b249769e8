package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var trainSize int

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Run a full training cycle",
	Long: `Synthesize a labeled corpus, fit the regression ensemble against it,
and retain the best candidate for serving. The corpus snapshot, run
metadata and selected model are persisted to the data directory.`,
	RunE: runTrain,
}

func init() {
	trainCmd.Flags().IntVar(&trainSize, "size", 0, "corpus size (defaults to synthesis.dataset_size)")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := buildLogger(cfg)
	eng, _ := buildEngine(cfg, log)

	size := trainSize
	if size <= 0 {
		size = cfg.Synthesis.DatasetSize
	}

	report, err := eng.Train(size, nil, cfg.PlanCatalog())
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(report)
	}

	fmt.Println("=== Training Report ===")
	fmt.Printf("Run:          %s\n", report.RunID)
	fmt.Printf("Dataset:      %d observations\n", report.DatasetSize)
	fmt.Printf("Winner:       %s\n", report.Winner)
	fmt.Printf("R²:           %.4f\n", report.Metrics.RSquared)
	fmt.Printf("MSE:          %.4f\n", report.Metrics.MSE)
	fmt.Printf("MAE:          %.4f\n", report.Metrics.MAE)
	fmt.Printf("Duration:     %s\n", report.Duration)
	fmt.Println("\nCandidates:")
	for _, c := range report.Candidates {
		fmt.Printf("  %-12s r²=%.4f mse=%.4f mae=%.4f\n", c.Kind, c.Metrics.RSquared, c.Metrics.MSE, c.Metrics.MAE)
	}
	fmt.Printf("  %-12s r²=%.4f (comparison only)\n", "heuristic", report.Baseline.RSquared)
	if report.FellBack {
		fmt.Println("\nNote: polynomial fit failed; the linear candidate won by default.")
	}

	return nil
}
