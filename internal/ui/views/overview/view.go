package overview

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	insightsdto "fintrack/internal/modules/insights/dto"
	recordsdto "fintrack/internal/modules/records/dto"
	"fintrack/internal/platform/log"
	"fintrack/internal/platform/money"
	"fintrack/internal/ui/components"
	"fintrack/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type InsightsPort interface {
	Overview(ctx context.Context) (insightsdto.OverviewOutput, error)
}

type RecordsPort interface {
	Recent(ctx context.Context, kind string) ([]recordsdto.RecordOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type OverviewLoadedMsg struct {
	Overview insightsdto.OverviewOutput
	Err      error
}

type RecentLoadedMsg struct {
	Kind    string
	Records []recordsdto.RecordOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

var recentTitles = map[string]string{
	"expense":    "Gastos Recientes",
	"saving":     "Ahorros Recientes",
	"investment": "Inversiones Recientes",
}

var caser = cases.Title(language.Spanish)

type Model struct {
	insights InsightsPort
	records  RecordsPort
	logger   *log.Logger

	overview insightsdto.OverviewOutput
	recent   map[string]components.DataTable
	spinner  spinner.Model
	loading  bool
	width    int
	height   int
}

func New(insights InsightsPort, records RecordsPort, logger *log.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	recent := make(map[string]components.DataTable, len(recentTitles))
	for kind, title := range recentTitles {
		recent[kind] = components.NewDataTable(title, []string{"Fecha", "Monto", "Categoría"})
	}

	return Model{
		insights: insights,
		records:  records,
		logger:   logger.WithComponent("overview"),
		recent:   recent,
		spinner:  sp,
		loading:  true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadOverviewCmd(),
		m.loadRecentCmd("expense"),
		m.loadRecentCmd("saving"),
		m.loadRecentCmd("investment"),
		m.spinner.Tick,
	)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case OverviewLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			// Read failures degrade silently: the last good summary stays up.
			m.logger.Warn("summary fetch failed", "err", msg.Err)
			return m, nil
		}
		m.overview = msg.Overview

	case RecentLoadedMsg:
		if msg.Err != nil {
			// The table keeps its last rows; the monthly summary still renders.
			m.logger.Warn("recent records fetch failed", "kind", msg.Kind, "err", msg.Err)
			return m, nil
		}
		table, ok := m.recent[msg.Kind]
		if !ok {
			return m, nil
		}
		rows := make([][]string, len(msg.Records))
		for i, r := range msg.Records {
			rows[i] = []string{
				r.Date.Format("2006-01-02"),
				money.Format(r.Amount),
				categoryLabel(r.Category),
			}
		}
		table.SetRows(rows)
		m.recent[msg.Kind] = table

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, m.Init()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Cargando…")
	}

	cardW := m.width/4 - 2
	if cardW < 24 {
		cardW = 24
	}

	cards := []string{
		components.KPICard{
			Title:       "Ingreso Mensual Total",
			Amount:      m.overview.Income,
			Description: "Total de ingresos del mes",
		}.View(cardW),
	}
	for _, kpi := range m.overview.KPIs {
		cards = append(cards, components.KPICard{
			Title:   kpi.Title,
			Amount:  kpi.Amount,
			HasGoal: kpi.Goal > 0,
			Goal:    kpi.Goal,
			Current: kpi.Current,
			Status:  kpi.Status,
			Bar:     kpi.Bar,
		}.View(cardW))
	}
	kpiRow := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	chartW := m.width/3 - 2
	if chartW < 30 {
		chartW = 30
	}
	var charts []string
	for _, dist := range m.overview.Distributions {
		charts = append(charts, theme.Pane.Width(chartW).Render(m.renderDistribution(dist, chartW-4)))
	}
	chartRow := lipgloss.JoinHorizontal(lipgloss.Top, charts...)

	tables := []string{
		m.recentTable("expense"),
		m.recentTable("saving"),
		m.recentTable("investment"),
	}
	tableRow := lipgloss.JoinHorizontal(lipgloss.Top, tables...)

	hint := theme.Muted.Render("r: recargar")
	return lipgloss.JoinVertical(lipgloss.Left, kpiRow, chartRow, tableRow, hint)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderDistribution(dist insightsdto.DistributionOutput, width int) string {
	if !dist.HasData {
		return theme.Title.Render(dist.Title) + "\n" +
			theme.Muted.Render("No hay datos disponibles.")
	}
	rows := make([]components.BarRow, len(dist.Slices))
	for i, s := range dist.Slices {
		style := theme.Good
		if i%2 == 1 {
			style = lipgloss.NewStyle().Foreground(theme.Sapphire)
		}
		rows[i] = components.BarRow{
			Label:  categoryLabel(s.Name),
			Value:  s.Amount,
			Detail: money.Format(s.Amount) + " (" + strconv.Itoa(s.Percentage) + "%)",
			Style:  style,
		}
	}
	return components.BarChart(dist.Title, rows, width)
}

func (m Model) recentTable(kind string) string {
	table := m.recent[kind]
	w := m.width/3 - 2
	if w < 30 {
		w = 30
	}
	return lipgloss.NewStyle().Width(w).Render(table.View())
}

func categoryLabel(value string) string {
	return caser.String(strings.ReplaceAll(value, "_", " "))
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) loadOverviewCmd() tea.Cmd {
	return func() tea.Msg {
		overview, err := m.insights.Overview(context.Background())
		return OverviewLoadedMsg{Overview: overview, Err: err}
	}
}

func (m Model) loadRecentCmd(kind string) tea.Cmd {
	return func() tea.Msg {
		records, err := m.records.Recent(context.Background(), kind)
		return RecentLoadedMsg{Kind: kind, Records: records, Err: err}
	}
}
