package goals

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goalsdto "fintrack/internal/modules/goals/dto"
	"fintrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type GoalsPort interface {
	Current(ctx context.Context) (goalsdto.GoalsOutput, error)
	SaveAll(ctx context.Context, input goalsdto.SaveAllInput) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type GoalsLoadedMsg struct {
	Goals goalsdto.GoalsOutput
	Err   error
}

type GoalsSavedMsg struct{ Err error }

// ─── model ───────────────────────────────────────────────────────────────────

var fieldLabels = []string{"Meta de Gasto", "Meta de Ahorro", "Meta de Inversión"}

type Model struct {
	port GoalsPort

	values  [3]float64
	focus   int
	dirty   bool
	spinner spinner.Model
	loading bool
	saving  bool
	status  string
	isError bool
	width   int
	height  int
}

func New(port GoalsPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case GoalsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			m.isError = true
			return m, nil
		}
		m.values = [3]float64{msg.Goals.Expense, msg.Goals.Saving, msg.Goals.Investment}
		m.dirty = false
		m.status = ""
		m.isError = false

	case GoalsSavedMsg:
		m.saving = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			m.isError = true
			return m, nil
		}
		m.dirty = false
		m.status = "Metas actualizadas correctamente"
		m.isError = false

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.loading || m.saving {
			return m, nil
		}
		switch msg.String() {
		case "up", "shift+tab":
			m.focus = (m.focus + 2) % 3
		case "down", "tab":
			m.focus = (m.focus + 1) % 3
		case "left", "h":
			m.adjust(-1)
		case "right", "l":
			m.adjust(1)
		case "H":
			m.adjust(-5)
		case "L":
			m.adjust(5)
		case "0":
			m.values[m.focus] = 0
			m.dirty = true
		case "s":
			m.saving = true
			m.status = ""
			return m, tea.Batch(m.saveCmd(), m.spinner.Tick)
		case "r":
			m.loading = true
			return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Cargando metas…")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Metas Financieras") + "\n")
	sb.WriteString(theme.Muted.Render("Porcentaje del ingreso mensual por destino") + "\n\n")

	for i, label := range fieldLabels {
		marker := "  "
		style := theme.Muted
		if i == m.focus {
			marker = theme.Hot.Render("> ")
			style = theme.Hot
		}
		sb.WriteString(fmt.Sprintf("%s%-20s %s\n", marker, style.Render(label), m.renderGauge(m.values[i])))
	}

	sum := m.values[0] + m.values[1] + m.values[2]
	sumStyle := theme.Good
	if sum > 100 {
		sumStyle = theme.Bad
	}
	sb.WriteString("\n" + theme.Muted.Render("Suma: ") + sumStyle.Render(fmt.Sprintf("%.1f%%", sum)) + "\n")

	switch {
	case m.saving:
		sb.WriteString("\n" + m.spinner.View() + " Guardando…")
	case m.status != "":
		if m.isError {
			sb.WriteString("\n" + theme.Bad.Render(m.status))
		} else {
			sb.WriteString("\n" + theme.Good.Render(m.status))
		}
	}

	sb.WriteString("\n\n" + theme.Muted.Render("↑/↓: campo  ←/→: ±1  H/L: ±5  0: vaciar  s: guardar  r: recargar"))
	return theme.Pane.Width(64).Render(sb.String())
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) adjust(delta float64) {
	v := m.values[m.focus] + delta
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	m.values[m.focus] = v
	m.dirty = true
}

func (m Model) renderGauge(value float64) string {
	const cells = 25
	filled := int(value / 100 * cells)
	if filled > cells {
		filled = cells
	}
	gauge := theme.Good.Render(strings.Repeat("█", filled)) +
		theme.Muted.Render(strings.Repeat("░", cells-filled))
	return fmt.Sprintf("%s %5.1f%%", gauge, value)
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		goals, err := m.port.Current(context.Background())
		return GoalsLoadedMsg{Goals: goals, Err: err}
	}
}

func (m Model) saveCmd() tea.Cmd {
	input := goalsdto.SaveAllInput{
		Expense:    m.values[0],
		Saving:     m.values[1],
		Investment: m.values[2],
	}
	return func() tea.Msg {
		return GoalsSavedMsg{Err: m.port.SaveAll(context.Background(), input)}
	}
}
