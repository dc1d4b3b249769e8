package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wattwise/wattwise/internal/patterns"
)

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchData(m.config),
		tick(m.config.RefreshInterval),
	)
}

// fetchData loads run metadata and corpus patterns from the store.
func fetchData(cfg Config) tea.Cmd {
	return func() tea.Msg {
		run, err := cfg.Store.LoadRun()
		if err != nil {
			return dataMsg{err: err}
		}

		corpus, err := cfg.Store.LoadCorpus()
		if err != nil {
			return dataMsg{run: run, err: err}
		}

		summary := patterns.Analyze(corpus)
		return dataMsg{run: run, summary: &summary}
	}
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, fetchData(m.config)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dataMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.run = msg.run
			m.summary = msg.summary
			m.lastUpdated = time.Now()
		}
		return m, nil

	case tickMsg:
		m.loading = true
		return m, tea.Batch(
			fetchData(m.config),
			tick(m.config.RefreshInterval),
		)
	}

	return m, nil
}
