package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	recordsdto "fintrack/internal/modules/records/dto"
	"fintrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ImportPort interface {
	ImportCSV(ctx context.Context, input recordsdto.ImportInput) (recordsdto.ImportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ImportDoneMsg struct {
	Report recordsdto.ImportOutput
	Err    error
}

// ─── model ───────────────────────────────────────────────────────────────────

type typeOption struct {
	value string
	label string
}

var typeOptions = []typeOption{
	{"income", "Ingresos"},
	{"expenses", "Gastos"},
	{"savings", "Ahorros"},
	{"investments", "Inversiones"},
	{"expense_goals", "Metas de Gasto"},
	{"saving_goals", "Metas de Ahorro"},
	{"investment_goals", "Metas de Inversión"},
}

type Model struct {
	port ImportPort

	path    textinput.Model
	typeIdx int
	spinner spinner.Model
	running bool
	status  string
	isError bool
	width   int
	height  int
}

func New(port ImportPort) Model {
	path := textinput.New()
	path.Placeholder = "/ruta/al/archivo.csv"
	path.CharLimit = 512
	path.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, path: path, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ImportDoneMsg:
		m.running = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			m.isError = true
			return m, nil
		}
		m.status = fmt.Sprintf("Importación completada: %d filas importadas, %d fallidas",
			msg.Report.Imported, msg.Report.Failed)
		m.isError = false

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.running {
			return m, nil
		}
		switch msg.String() {
		case "ctrl+t":
			m.typeIdx = (m.typeIdx + 1) % len(typeOptions)
			return m, nil
		case "enter":
			path := strings.TrimSpace(m.path.Value())
			if path == "" {
				m.status = "La ruta del archivo es requerida"
				m.isError = true
				return m, nil
			}
			m.running = true
			m.status = ""
			return m, tea.Batch(m.importCmd(path), m.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Importar Datos (CSV)") + "\n\n")
	sb.WriteString(theme.Muted.Render("Tipo de datos: ") + theme.Hot.Render(typeOptions[m.typeIdx].label) + "\n\n")
	sb.WriteString(theme.Muted.Render("Archivo") + "\n")
	sb.WriteString(m.path.View() + "\n\n")

	switch {
	case m.running:
		sb.WriteString(m.spinner.View() + " Importando…")
	case m.status != "" && m.isError:
		sb.WriteString(theme.Bad.Render(m.status))
	case m.status != "":
		sb.WriteString(theme.Good.Render(m.status))
	default:
		sb.WriteString(theme.Muted.Render("Columnas: fecha, monto y categoría según el tipo"))
	}

	sb.WriteString("\n\n" + theme.Muted.Render("ctrl+t: tipo  enter: importar"))
	card := theme.Pane.Width(64).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) importCmd(path string) tea.Cmd {
	input := recordsdto.ImportInput{
		DataType: typeOptions[m.typeIdx].value,
		Path:     path,
	}
	return func() tea.Msg {
		report, err := m.port.ImportCSV(context.Background(), input)
		return ImportDoneMsg{Report: report, Err: err}
	}
}
