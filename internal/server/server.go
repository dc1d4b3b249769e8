// Package server exposes the forecasting pipeline over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/wattwise/wattwise/internal/config"
	"github.com/wattwise/wattwise/internal/engine"
	"github.com/wattwise/wattwise/internal/server/middleware"
	"github.com/wattwise/wattwise/internal/storage"
)

type Server struct {
	httpServer *http.Server
	engine     *engine.Engine
	store      *storage.Store
	config     *config.Config
	logger     *slog.Logger
	version    string
}

func New(cfg *config.Config, eng *engine.Engine, store *storage.Store, logger *slog.Logger, version string) *Server {
	s := &Server{
		engine:  eng,
		store:   store,
		config:  cfg,
		logger:  logger,
		version: version,
	}

	mux := s.setupRoutes()

	handler := middleware.Chain(
		mux,
		middleware.Recovery(logger),
		middleware.Logging(logger),
		middleware.MaxBody(0),
	)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	s.logger.Info("server starting",
		"addr", s.httpServer.Addr,
	)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler returns the fully wrapped handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
