package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show training status and the retained model",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := buildLogger(cfg)
	eng, store := buildEngine(cfg, log)

	if err := eng.Restore(); err != nil {
		return err
	}

	info := eng.Status()
	run, err := store.LoadRun()
	if err != nil {
		return err
	}

	if jsonOut {
		out := map[string]any{"status": info}
		if run != nil {
			out["last_run"] = run
		}
		return json.NewEncoder(os.Stdout).Encode(out)
	}

	fmt.Println("=== Training Status ===")
	fmt.Printf("Status:       %s\n", info.Status)
	fmt.Printf("Dataset size: %d\n", info.DatasetSize)
	if info.LastTrainingDate != nil {
		fmt.Printf("Last trained: %s\n", info.LastTrainingDate.Format("2006-01-02 15:04:05"))
	}

	if kind, metrics, ok := eng.ActiveModel(); ok {
		fmt.Println("\n=== Retained Model ===")
		fmt.Printf("Kind:     %s\n", kind)
		fmt.Printf("R²:       %.4f\n", metrics.RSquared)
		fmt.Printf("MSE:      %.4f\n", metrics.MSE)
		fmt.Printf("MAE:      %.4f\n", metrics.MAE)
		fmt.Printf("Accuracy: %.1f%%\n", metrics.AccuracyPercent)
	}

	if run != nil {
		fmt.Println("\n=== Last Run ===")
		fmt.Printf("Run:      %s\n", run.ID)
		fmt.Printf("Duration: %s\n", run.Duration)
		fmt.Printf("Baseline: r²=%.4f\n", run.Baseline.RSquared)
		if run.FellBack {
			fmt.Println("Note: polynomial fit fell back to linear")
		}
		fmt.Printf("Host:     cpu=%.1f%% mem=%.1f%%\n", run.Host.CPUPercent, run.Host.MemoryPercent)
	}

	return nil
}
