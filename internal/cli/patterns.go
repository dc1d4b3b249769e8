package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show consumption patterns from the current corpus",
	Long: `Aggregate the persisted corpus snapshot into hourly, daily and
seasonal consumption averages.`,
	RunE: runPatterns,
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}

func runPatterns(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := buildLogger(cfg)
	eng, _ := buildEngine(cfg, log)

	summary, err := eng.Analyze()
	if err != nil {
		return err
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(summary)
	}

	fmt.Println("=== Hourly Consumption ===")
	var maxAvg float64
	for _, bucket := range summary.Hourly {
		if bucket.AvgKwh > maxAvg {
			maxAvg = bucket.AvgKwh
		}
	}
	for _, bucket := range summary.Hourly {
		bar := ""
		if maxAvg > 0 {
			bar = strings.Repeat("█", int(bucket.AvgKwh/maxAvg*30))
		}
		peak := " "
		if bucket.IsPeak {
			peak = "*"
		}
		fmt.Printf("%02d:00 %s %6.1f kWh %s\n", bucket.Hour, peak, bucket.AvgKwh, bar)
	}

	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	fmt.Println("\n=== Daily Consumption ===")
	for _, bucket := range summary.Daily {
		fmt.Printf("%s %6.1f kWh\n", days[bucket.DayOfWeek], bucket.AvgKwh)
	}

	fmt.Println("\n=== Seasonal Consumption ===")
	for _, bucket := range summary.Seasonal {
		fmt.Printf("%-7s %6.1f kWh\n", bucket.Season, bucket.AvgKwh)
	}

	return nil
}
