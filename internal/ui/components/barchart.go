package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"fintrack/internal/ui/theme"
)

// BarRow is one labeled bar. Detail is appended after the bar, typically
// the formatted value or percentage.
type BarRow struct {
	Label  string
	Value  float64
	Detail string
	Style  lipgloss.Style
}

// BarChart renders labeled horizontal bars scaled against the largest
// value. It stands in for the dashboard's pie and line charts, which do
// not translate to cells.
func BarChart(title string, rows []BarRow, width int) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(theme.Title.Render(title) + "\n")
	}
	if len(rows) == 0 {
		sb.WriteString(theme.Muted.Render("No hay datos disponibles."))
		return sb.String()
	}

	labelW := 0
	max := 0.0
	for _, row := range rows {
		if w := lipgloss.Width(row.Label); w > labelW {
			labelW = w
		}
		if row.Value > max {
			max = row.Value
		}
	}

	barW := width - labelW - 18
	if barW < 8 {
		barW = 8
	}

	for i, row := range rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		filled := 0
		if max > 0 && row.Value > 0 {
			filled = int(row.Value / max * float64(barW))
			if filled == 0 {
				filled = 1
			}
		}
		style := row.Style
		bar := style.Render(strings.Repeat("▇", filled))
		pad := strings.Repeat(" ", barW-filled)
		sb.WriteString(fmt.Sprintf("%-*s %s%s %s", labelW, row.Label, bar, pad, theme.Muted.Render(row.Detail)))
	}
	return sb.String()
}
