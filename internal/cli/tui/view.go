package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the TUI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	// Title bar
	sections = append(sections, m.renderTitleBar())

	// Error display
	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if m.run != nil {
		sections = append(sections, m.renderRun())
	} else if m.err == nil {
		sections = append(sections, helpStyle.Render("  No training run recorded yet. Run 'wattwise train' first."))
	}

	if m.summary != nil {
		sections = append(sections, m.renderHourly())
		sections = append(sections, m.renderSeasonal())
	}

	// Footer
	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitleBar() string {
	title := titleStyle.Render("WATTWISE DASHBOARD")

	refreshInfo := fmt.Sprintf("↻ %s", m.config.RefreshInterval)
	if m.loading {
		refreshInfo = "↻ loading..."
	}

	help := helpStyle.Render("q:quit r:refresh")

	// Calculate spacing
	rightPart := fmt.Sprintf("%s | %s", refreshInfo, help)
	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(rightPart) - 2
	if spacing < 1 {
		spacing = 1
	}

	return fmt.Sprintf("%s%s%s", title, strings.Repeat(" ", spacing), helpStyle.Render(rightPart))
}

func (m Model) renderRun() string {
	var lines []string
	lines = append(lines, sectionHeaderStyle.Render("  Latest Training Run"))

	r2 := m.run.Metrics.RSquared
	r2Styled := lipgloss.NewStyle().Foreground(fitColor(r2)).Render(fmt.Sprintf("%.4f", r2))

	lines = append(lines, fmt.Sprintf("  %s %s    %s %s    %s %s",
		labelStyle.Render("Model:"), valueStyle.Render(string(m.run.Winner)),
		labelStyle.Render("R²:"), r2Styled,
		labelStyle.Render("Accuracy:"), valueStyle.Render(fmt.Sprintf("%.1f%%", m.run.Metrics.AccuracyPercent)),
	))
	lines = append(lines, fmt.Sprintf("  %s %s    %s %s    %s %s",
		labelStyle.Render("MSE:"), valueStyle.Render(fmt.Sprintf("%.3f", m.run.Metrics.MSE)),
		labelStyle.Render("MAE:"), valueStyle.Render(fmt.Sprintf("%.3f", m.run.Metrics.MAE)),
		labelStyle.Render("Samples:"), valueStyle.Render(fmt.Sprintf("%d", m.run.DatasetSize)),
	))
	lines = append(lines, fmt.Sprintf("  %s %s    %s %s",
		labelStyle.Render("Trained:"), valueStyle.Render(m.run.TrainedAt.Format("2006-01-02 15:04:05")),
		labelStyle.Render("Duration:"), valueStyle.Render(m.run.Duration.String()),
	))

	if m.run.FellBack {
		lines = append(lines, errorStyle.Render("  Polynomial fit failed, linear fallback used"))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderHourly() string {
	var lines []string
	lines = append(lines, sectionHeaderStyle.Render("  Hourly Consumption"))

	maxAvg := 0.0
	for _, b := range m.summary.Hourly {
		if b.AvgKwh > maxAvg {
			maxAvg = b.AvgKwh
		}
	}
	if maxAvg <= 0 {
		lines = append(lines, helpStyle.Render("  no samples"))
		return strings.Join(lines, "\n")
	}

	barWidth := 30
	for _, b := range m.summary.Hourly {
		filled := int(b.AvgKwh / maxAvg * float64(barWidth))
		if filled > barWidth {
			filled = barWidth
		}
		style := barStyle
		marker := " "
		if b.IsPeak {
			style = peakBarStyle
			marker = "*"
		}
		bar := style.Render(strings.Repeat("█", filled))
		lines = append(lines, fmt.Sprintf("  %02d %s %s %s",
			b.Hour, marker, bar, valueStyle.Render(fmt.Sprintf("%.1f kWh", b.AvgKwh))))
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderSeasonal() string {
	var parts []string
	for _, b := range m.summary.Seasonal {
		parts = append(parts, fmt.Sprintf("%s %s",
			labelStyle.Render(string(b.Season)+":"),
			valueStyle.Render(fmt.Sprintf("%.1f kWh", b.AvgKwh))))
	}
	if len(parts) == 0 {
		return ""
	}
	return sectionHeaderStyle.Render("  Seasonal") + "\n  " + strings.Join(parts, "    ")
}

func (m Model) renderFooter() string {
	if m.lastUpdated.IsZero() {
		return ""
	}
	return helpStyle.Render(fmt.Sprintf("  Updated: %s", m.lastUpdated.Format("15:04:05")))
}
