package cli

import (
	"log/slog"

	"github.com/wattwise/wattwise/internal/config"
	"github.com/wattwise/wattwise/internal/engine"
	"github.com/wattwise/wattwise/internal/logger"
	"github.com/wattwise/wattwise/internal/model"
	"github.com/wattwise/wattwise/internal/recommend"
	"github.com/wattwise/wattwise/internal/storage"
	"github.com/wattwise/wattwise/internal/synth"
)

// loadConfig resolves the effective configuration for a command.
func loadConfig() *config.Config {
	return config.LoadOrDefault(cfgFile)
}

// buildLogger constructs the process logger. The verbose flag overrides
// the configured level.
func buildLogger(cfg *config.Config) *slog.Logger {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	return logger.New(level, cfg.Logging.Format)
}

// buildEngine wires the forecasting pipeline from configuration.
func buildEngine(cfg *config.Config, log *slog.Logger) (*engine.Engine, *storage.Store) {
	store := storage.New(cfg.Persistence.DataDir, log)
	eng := engine.New(
		synth.New(cfg.Synthesis.Seed, log),
		model.NewTrainer(log),
		recommend.New(cfg.Catalog, log),
		store,
		log,
	)
	return eng, store
}
