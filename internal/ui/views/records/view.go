package records

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	recordsdto "fintrack/internal/modules/records/dto"
	"fintrack/internal/platform/money"
	"fintrack/internal/ui/components"
	"fintrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type RecordsPort interface {
	List(ctx context.Context, input recordsdto.ListInput) ([]recordsdto.RecordOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type RecordsLoadedMsg struct {
	Kind    string
	Records []recordsdto.RecordOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

type kindOption struct {
	value string
	label string
}

var kindOptions = []kindOption{
	{"expense", "Gastos"},
	{"saving", "Ahorros"},
	{"investment", "Inversiones"},
}

type Model struct {
	port RecordsPort

	kindIdx int
	table   components.DataTable
	spinner spinner.Model
	loading bool
	errMsg  string
	width   int
	height  int
}

func New(port RecordsPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:    port,
		table:   components.NewDataTable("Gastos del Mes", []string{"ID", "Fecha", "Monto", "Categoría"}),
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case RecordsLoadedMsg:
		if msg.Kind != kindOptions[m.kindIdx].value {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		rows := make([][]string, len(msg.Records))
		for i, r := range msg.Records {
			rows[i] = []string{
				strconv.FormatInt(r.ID, 10),
				r.Date.Format("2006-01-02"),
				money.Format(r.Amount),
				r.Category,
			}
		}
		m.table.SetRows(rows)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "k":
			m.kindIdx = (m.kindIdx + 1) % len(kindOptions)
			return m, m.switchKind()
		case "K":
			m.kindIdx = (m.kindIdx + len(kindOptions) - 1) % len(kindOptions)
			return m, m.switchKind()
		case "1", "2", "3", "4":
			col, _ := strconv.Atoi(msg.String())
			m.table.SortBy(col - 1)
		case "[":
			m.table.PrevPage()
		case "]":
			m.table.NextPage()
		case "z":
			m.table.CyclePageSize()
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
			m.spinner.View()+" Cargando registros…")
	}
	if m.errMsg != "" {
		return theme.Bad.Render("Error cargando registros: ") + theme.Muted.Render(m.errMsg)
	}

	hint := theme.Muted.Render(
		"k/K: tipo  1-4: ordenar  [ ]: página  z: tamaño  r: recargar  (:: record:add / record:delete)")
	return lipgloss.JoinVertical(lipgloss.Left, m.table.View(), "", hint)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) switchKind() tea.Cmd {
	titles := map[string]string{
		"expense":    "Gastos del Mes",
		"saving":     "Ahorros del Mes",
		"investment": "Inversiones del Mes",
	}
	kind := kindOptions[m.kindIdx].value
	m.table = components.NewDataTable(titles[kind], []string{"ID", "Fecha", "Monto", "Categoría"})
	m.loading = true
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// Reload re-fetches the current kind, used by the app after a palette
// mutation so the table reflects the change.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	kind := kindOptions[m.kindIdx].value
	return func() tea.Msg {
		now := time.Now()
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		records, err := m.port.List(context.Background(), recordsdto.ListInput{
			Kind:  kind,
			Start: start,
			End:   now,
		})
		return RecordsLoadedMsg{Kind: kind, Records: records, Err: err}
	}
}
