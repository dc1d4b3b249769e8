package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wattwise/wattwise/internal/engine"
	"github.com/wattwise/wattwise/internal/model"
)

var (
	predictTemperature float64
	predictHour        int
	predictHousehold   int
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict energy consumption for a feature vector",
	Long: `Serve one prediction from the model retained by the last completed
training run.

Examples:
  wattwise predict --temperature 25 --hour 19 --household 4`,
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().Float64Var(&predictTemperature, "temperature", 20, "outdoor temperature in °C")
	predictCmd.Flags().IntVar(&predictHour, "hour", 12, "hour of day (0-23)")
	predictCmd.Flags().IntVar(&predictHousehold, "household", 2, "household size")
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	if predictHour < 0 || predictHour > 23 {
		return fmt.Errorf("hour must be between 0 and 23, got %d", predictHour)
	}
	if predictHousehold < 1 {
		return fmt.Errorf("household size must be at least 1, got %d", predictHousehold)
	}

	cfg := loadConfig()
	log := buildLogger(cfg)
	eng, _ := buildEngine(cfg, log)

	if err := eng.Restore(); err != nil {
		return err
	}

	prediction, err := eng.Predict(model.Features{
		Temperature:   predictTemperature,
		HourOfDay:     predictHour,
		HouseholdSize: predictHousehold,
	})
	if errors.Is(err, engine.ErrModelNotTrained) {
		return fmt.Errorf("no trained model found; run `wattwise train` first")
	}
	if err != nil {
		return err
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(prediction)
	}

	fmt.Printf("Predicted consumption: %.2f kWh\n", prediction.PredictedEnergyKwh)
	fmt.Printf("Confidence:            %.2f\n", prediction.Confidence)
	fmt.Printf("Model:                 %s\n", prediction.Model)

	return nil
}
