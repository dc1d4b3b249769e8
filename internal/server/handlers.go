package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wattwise/wattwise/internal/energy"
	"github.com/wattwise/wattwise/internal/engine"
	"github.com/wattwise/wattwise/internal/model"
	"github.com/wattwise/wattwise/internal/recommend"
)

type InfoResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type TrainRequest struct {
	DatasetSize int `json:"dataset_size"`
}

type PredictRequest struct {
	TemperatureCelsius float64 `json:"temperature_celsius"`
	HourOfDay          int     `json:"hour_of_day"`
	HouseholdSize      int     `json:"household_size"`
}

type RecommendRequest struct {
	Customer     energy.Customer      `json:"customer"`
	UsageHistory []energy.UsageRecord `json:"usage_history"`
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	resp := InfoResponse{
		Name:    "wattwise",
		Version: s.version,
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status: "ok",
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.Status())
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	run, err := s.store.LoadRun()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if run == nil {
		http.Error(w, "no training run recorded", http.StatusNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, run)
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	summary, err := s.engine.Analyze()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleTrain(w http.ResponseWriter, r *http.Request) {
	var req TrainRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	size := req.DatasetSize
	if size <= 0 {
		size = s.config.Synthesis.DatasetSize
	}

	report, err := s.engine.Train(size, nil, s.config.PlanCatalog())
	if err != nil {
		if errors.Is(err, engine.ErrTrainingInProgress) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.HourOfDay < 0 || req.HourOfDay > 23 {
		http.Error(w, "hour_of_day must be between 0 and 23", http.StatusBadRequest)
		return
	}
	if req.HouseholdSize < 1 {
		http.Error(w, "household_size must be at least 1", http.StatusBadRequest)
		return
	}

	prediction, err := s.engine.Predict(model.Features{
		Temperature:   req.TemperatureCelsius,
		HourOfDay:     req.HourOfDay,
		HouseholdSize: req.HouseholdSize,
	})
	if err != nil {
		if errors.Is(err, engine.ErrModelNotTrained) {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, prediction)
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	rec, err := s.engine.Recommend(req.Customer, req.UsageHistory)
	if err != nil {
		if errors.Is(err, recommend.ErrInsufficientHistory) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response",
			"error", err,
			"status", status,
		)
	}
}
