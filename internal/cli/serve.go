package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wattwise/wattwise/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the forecasting API over HTTP",
	Long: `Expose the forecasting pipeline as an HTTP API: predictions,
plan recommendations, consumption patterns, training runs and
Prometheus metrics. The last persisted model is restored on startup so
predictions survive restarts.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	log := buildLogger(cfg)
	eng, store := buildEngine(cfg, log)

	if err := eng.Restore(); err != nil {
		log.Warn("could not restore model state", "error", err)
	}

	srv := server.New(cfg, eng, store, log, Version)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
