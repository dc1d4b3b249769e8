package tui

import (
	"time"

	"github.com/wattwise/wattwise/internal/patterns"
	"github.com/wattwise/wattwise/internal/storage"
)

// Config holds TUI configuration
type Config struct {
	Store           *storage.Store
	RefreshInterval time.Duration
}

// Model represents the TUI state
type Model struct {
	config Config

	// Data from the store
	run     *storage.RunRecord
	summary *patterns.Summary

	// UI state
	width       int
	height      int
	loading     bool
	err         error
	lastUpdated time.Time
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	return Model{
		config:  cfg,
		loading: true,
	}
}

// dataMsg carries a refresh of run metadata and pattern summary.
type dataMsg struct {
	run     *storage.RunRecord
	summary *patterns.Summary
	err     error
}

type tickMsg time.Time
