package history

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	insightsdto "fintrack/internal/modules/insights/dto"
	"fintrack/internal/platform/log"
	"fintrack/internal/platform/money"
	"fintrack/internal/ui/components"
	"fintrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type InsightsPort interface {
	History(ctx context.Context, input insightsdto.HistoryInput) (insightsdto.SeriesOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SeriesLoadedMsg struct {
	Seq    int
	Series insightsdto.SeriesOutput
	Err    error
}

// ─── selectors ───────────────────────────────────────────────────────────────

type option struct {
	value string
	label string
}

var periodOptions = []option{
	{"1month", "1 Mes"},
	{"6months", "6 Meses"},
	{"1year", "1 Año"},
	{"3years", "3 Años"},
	{"5years", "5 Años"},
}

var typeOptions = []option{
	{"income", "Ingresos"},
	{"expenses", "Gastos"},
	{"savings", "Ahorros"},
	{"investments", "Inversiones"},
	{"expense_goals", "Metas de Gasto"},
	{"saving_goals", "Metas de Ahorro"},
	{"investment_goals", "Metas de Inversión"},
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   InsightsPort
	logger *log.Logger

	periodIdx int
	typeIdx   int
	series    insightsdto.SeriesOutput
	// seq guards against slow responses landing after a newer selection;
	// only the latest request's reply is applied.
	seq     int
	spinner spinner.Model
	loading bool
	width   int
	height  int
}

func New(port InsightsPort, logger *log.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:      port,
		logger:    logger.WithComponent("history"),
		periodIdx: 1, // 6 Meses, the dashboard default
		spinner:   sp,
		loading:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadSeriesCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case SeriesLoadedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			// Read failures degrade silently: the last good chart stays up.
			m.logger.Warn("history fetch failed", "err", msg.Err)
			return m, nil
		}
		m.series = msg.Series

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "p":
			m.periodIdx = (m.periodIdx + 1) % len(periodOptions)
			return m, m.reload()
		case "P":
			m.periodIdx = (m.periodIdx + len(periodOptions) - 1) % len(periodOptions)
			return m, m.reload()
		case "t":
			m.typeIdx = (m.typeIdx + 1) % len(typeOptions)
			return m, m.reload()
		case "T":
			m.typeIdx = (m.typeIdx + len(typeOptions) - 1) % len(typeOptions)
			return m, m.reload()
		case "r":
			return m, m.reload()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.renderControls() + "\n\n")

	if m.loading {
		sb.WriteString(m.spinner.View() + " Cargando datos…")
	} else {
		sb.WriteString(m.renderChart())
	}

	sb.WriteString("\n\n" + theme.Muted.Render("t/T: tipo  p/P: período  r: recargar"))
	return sb.String()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) reload() tea.Cmd {
	m.seq++
	m.loading = true
	return tea.Batch(m.loadSeriesCmd(), m.spinner.Tick)
}

func (m Model) renderControls() string {
	period := periodOptions[m.periodIdx]
	chart := typeOptions[m.typeIdx]
	return theme.Muted.Render("Período: ") + theme.Hot.Render(period.label) +
		theme.Muted.Render("   Tipo: ") + theme.Hot.Render(chart.label)
}

func (m Model) renderChart() string {
	if len(m.series.Labels) == 0 {
		return theme.Muted.Render("No hay datos disponibles.")
	}

	width := m.width - 4
	if width < 40 {
		width = 40
	}

	var sections []string
	for i, ds := range m.series.Datasets {
		style := theme.Good
		if i == 1 {
			style = theme.Bad
		}
		rows := make([]components.BarRow, len(m.series.Labels))
		for j, label := range m.series.Labels {
			value := ds.Values[j]
			rows[j] = components.BarRow{
				Label:  label,
				Value:  value,
				Detail: m.formatValue(value),
				Style:  style,
			}
		}
		title := m.series.Title
		if len(m.series.Datasets) > 1 {
			title = ds.Label
		}
		sections = append(sections, components.BarChart(title, rows, width))
	}
	return strings.Join(sections, "\n\n")
}

func (m Model) formatValue(v float64) string {
	if m.series.IsGoal {
		return fmt.Sprintf("%.1f%%", v)
	}
	return money.Format(v)
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) loadSeriesCmd() tea.Cmd {
	seq := m.seq
	input := insightsdto.HistoryInput{
		DataType: typeOptions[m.typeIdx].value,
		Period:   periodOptions[m.periodIdx].value,
	}
	return func() tea.Msg {
		series, err := m.port.History(context.Background(), input)
		return SeriesLoadedMsg{Seq: seq, Series: series, Err: err}
	}
}
