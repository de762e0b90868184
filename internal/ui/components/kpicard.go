package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fintrack/internal/platform/money"
	"fintrack/internal/ui/theme"
)

const kpiBarCells = 20

// KPICard is one month-total card: a money value plus an optional goal
// progress bar colored by whether the current percentage is on the good
// side of the target.
type KPICard struct {
	Title       string
	Amount      float64
	Description string

	// Goal progress, shown only when HasGoal is set.
	HasGoal bool
	Goal    float64
	Current float64
	Status  string // positive|negative
	Bar     float64
}

func (c KPICard) View(width int) string {
	var sb strings.Builder
	sb.WriteString(theme.Muted.Render(c.Title) + "\n")
	sb.WriteString(theme.Title.Render(money.Format(c.Amount)) + "\n")
	if c.Description != "" {
		sb.WriteString(theme.Muted.Render(c.Description) + "\n")
	}

	if c.HasGoal {
		status := theme.Good
		if c.Status == "negative" {
			status = theme.Bad
		}
		sb.WriteString("\n")
		sb.WriteString(theme.Muted.Render("Progreso  "))
		sb.WriteString(status.Render(fmt.Sprintf("%.1f%% / %.1f%%", c.Current, c.Goal)))
		sb.WriteString("\n" + renderBar(c.Bar, status))
	}

	return theme.Pane.Width(width).Render(sb.String())
}

// renderBar draws width as filled cells out of kpiBarCells, width being a
// 0..100 percentage.
func renderBar(width float64, style lipgloss.Style) string {
	filled := int(width / 100 * kpiBarCells)
	if filled > kpiBarCells {
		filled = kpiBarCells
	}
	if filled < 0 {
		filled = 0
	}
	return style.Render(strings.Repeat("█", filled)) +
		theme.Muted.Render(strings.Repeat("░", kpiBarCells-filled))
}
