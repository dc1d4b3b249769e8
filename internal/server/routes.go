package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /", s.handleInfo)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("GET /run", s.handleRun)
	mux.HandleFunc("GET /patterns", s.handlePatterns)
	mux.HandleFunc("POST /train", s.handleTrain)
	mux.HandleFunc("POST /predict", s.handlePredict)
	mux.HandleFunc("POST /recommend", s.handleRecommend)

	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
