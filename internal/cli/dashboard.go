package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/wattwise/wattwise/internal/cli/tui"
	"github.com/wattwise/wattwise/internal/logger"
	"github.com/wattwise/wattwise/internal/storage"
)

var (
	refreshInterval time.Duration
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch interactive TUI dashboard",
	Long: `Launch an interactive terminal user interface showing the latest
training run and the consumption patterns of the current corpus.

Examples:
  wattwise dashboard                  # Basic launch with default settings
  wattwise dashboard --refresh 500ms  # Faster refresh rate`,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().DurationVar(&refreshInterval, "refresh", 2*time.Second, "dashboard refresh interval")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	config := tui.Config{
		Store:           storage.New(cfg.Persistence.DataDir, logger.Nop()),
		RefreshInterval: refreshInterval,
	}

	return tui.Run(config)
}
