package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "fintrack/internal/modules/auth/dto"
	goalsdto "fintrack/internal/modules/goals/dto"
	insightsdto "fintrack/internal/modules/insights/dto"
	recordsdto "fintrack/internal/modules/records/dto"
	"fintrack/internal/platform/log"
	"fintrack/internal/ui/components"
	"fintrack/internal/ui/theme"
	goalsview "fintrack/internal/ui/views/goals"
	historyview "fintrack/internal/ui/views/history"
	importerview "fintrack/internal/ui/views/importer"
	loginview "fintrack/internal/ui/views/login"
	overviewview "fintrack/internal/ui/views/overview"
	recordsview "fintrack/internal/ui/views/records"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type authPort interface {
	Bootstrap(ctx context.Context) (authdto.SessionOutput, error)
	Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error)
	Logout(ctx context.Context) error
}

type recordsPort interface {
	Add(ctx context.Context, input recordsdto.AddRecordInput) error
	AddIncome(ctx context.Context, input recordsdto.AddIncomeInput) error
	List(ctx context.Context, input recordsdto.ListInput) ([]recordsdto.RecordOutput, error)
	Recent(ctx context.Context, kind string) ([]recordsdto.RecordOutput, error)
	Delete(ctx context.Context, kind string, id int64) error
	ImportCSV(ctx context.Context, input recordsdto.ImportInput) (recordsdto.ImportOutput, error)
}

type goalsPort interface {
	Current(ctx context.Context) (goalsdto.GoalsOutput, error)
	Set(ctx context.Context, kind string, value float64) error
	SaveAll(ctx context.Context, input goalsdto.SaveAllInput) error
	Clear(ctx context.Context, kind string) error
}

type insightsPort interface {
	Overview(ctx context.Context) (insightsdto.OverviewOutput, error)
	History(ctx context.Context, input insightsdto.HistoryInput) (insightsdto.SeriesOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabOverview tabID = iota
	tabHistory
	tabRecords
	tabGoals
	tabImport
	tabCount
)

var tabLabels = [tabCount]string{
	"Resumen", "Histórico", "Registros", "Metas", "Importar",
}

// ─── gate state ──────────────────────────────────────────────────────────────

type gateState int

const (
	gateBooting gateState = iota
	gateAnonymous
	gateAuthenticated
)

// ─── async messages ───────────────────────────────────────────────────────────

type bootstrapMsg struct {
	session authdto.SessionOutput
	err     error
}

type loggedOutMsg struct{ err error }

type mutationDoneMsg struct {
	label string
	err   error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Reload  key.Binding
	Sort    key.Binding
	Page    key.Binding
	Kind    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pestaña siguiente")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "ayuda")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "comandos")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "salir")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recargar")),
		Sort:    key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "ordenar columna")),
		Page:    key.NewBinding(key.WithKeys("[", "]"), key.WithHelp("[/]", "página")),
		Kind:    key.NewBinding(key.WithKeys("k"), key.WithHelp("k/K", "tipo de registro")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Reload},
		{k.Sort, k.Page, k.Kind},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the session gate, tab routing,
// the global help overlay, and the command palette. All business logic is
// delegated to port interfaces; all rendering is delegated to sub-views.
type Model struct {
	auth     authPort
	records  recordsPort
	goals    goalsPort
	insights insightsPort

	// sub-views (one per tab, plus the login gate)
	loginView    loginview.Model
	overviewView overviewview.Model
	historyView  historyview.Model
	recordsView  recordsview.Model
	goalsView    goalsview.Model
	importView   importerview.Model

	// global UI state
	gate      gateState
	email     string
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	spinner   spinner.Model
	status    string
	width     int
	height    int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(auth authPort, records recordsPort, goals goalsPort, insights insightsPort, logger *log.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		auth:         auth,
		records:      records,
		goals:        goals,
		insights:     insights,
		loginView:    loginview.New(loginPortBridge{p: auth}),
		overviewView: overviewview.New(insights, records, logger),
		historyView:  historyview.New(insights, logger),
		recordsView:  recordsview.New(records),
		goalsView:    goalsview.New(goals),
		importView:   importerview.New(records),
		gate:         gateBooting,
		keys:         defaultKeys(),
		help:         help.New(),
		palette:      components.NewPalette(),
		spinner:      sp,
		status:       "listo",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.bootstrapCmd(), m.spinner.Tick)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()
		return m, nil

	case bootstrapMsg:
		if msg.err != nil || !msg.session.Authenticated {
			m.gate = gateAnonymous
			return m, m.loginView.Init()
		}
		return m.enterAuthenticated(msg.session)

	case loggedOutMsg:
		if msg.err != nil {
			m.status = "logout: " + msg.err.Error()
			return m, nil
		}
		m.gate = gateAnonymous
		m.email = ""
		m.loginView = loginview.New(loginPortBridge{p: m.auth})
		m.propagateSize()
		return m, m.loginView.Init()

	case mutationDoneMsg:
		if msg.err != nil {
			m.status = msg.label + ": " + msg.err.Error()
			return m, nil
		}
		m.status = msg.label + ": hecho"
		// Mutations change what the data tabs show, so refresh them.
		cmds = append(cmds, m.overviewView.Init(), m.recordsView.Reload(), m.goalsView.Init())
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if m.gate == gateBooting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case loginview.LoggedInMsg:
		if msg.Err == nil {
			return m.enterAuthenticated(msg.Session)
		}
	}

	switch m.gate {
	case gateBooting:
		return m, tea.Batch(cmds...)

	case gateAnonymous:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.loginView, cmd = m.loginView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "listo"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// The import tab types into a text field; only the global
		// bindings that cannot collide with typing stay active.
		typing := m.activeTab == tabImport
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		}
		if !typing {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = !m.showHelp
				return m, nil
			case ":":
				return m, m.palette.Open()
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabOverview:
		m.overviewView, tabCmd = m.overviewView.Update(msg)
	case tabHistory:
		m.historyView, tabCmd = m.historyView.Update(msg)
	case tabRecords:
		m.recordsView, tabCmd = m.recordsView.Update(msg)
	case tabGoals:
		m.goalsView, tabCmd = m.goalsView.Update(msg)
	case tabImport:
		m.importView, tabCmd = m.importView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	switch m.gate {
	case gateBooting:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Verificando sesión…")
	case gateAnonymous:
		return m.loginView.View()
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabOverview:
		return m.overviewView.View()
	case tabHistory:
		return m.historyView.View()
	case tabRecords:
		return m.recordsView.View()
	case tabGoals:
		return m.goalsView.View()
	case tabImport:
		return m.importView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "fintrack  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.email != "" {
		left = theme.Hot.Render("● "+m.email) + "  " + left
	}
	right := theme.Muted.Render("?:ayuda  tab:pestaña  :::comandos  q:salir")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "record:add":
		if len(parts) < 5 {
			m.status = "uso: record:add <tipo> <aaaa-mm-dd> <monto> <categoria>"
			return m, nil
		}
		date, err := time.Parse("2006-01-02", parts[2])
		if err != nil {
			m.status = "fecha inválida: " + parts[2]
			return m, nil
		}
		amount, err := strconv.ParseFloat(parts[3], 64)
		if err != nil {
			m.status = "monto inválido: " + parts[3]
			return m, nil
		}
		in := recordsdto.AddRecordInput{
			Kind:     parts[1],
			Date:     date,
			Amount:   amount,
			Category: strings.Join(parts[4:], " "),
		}
		return m, m.mutationCmd("record:add", func(ctx context.Context) error {
			return m.records.Add(ctx, in)
		})

	case "record:delete":
		if len(parts) != 3 {
			m.status = "uso: record:delete <tipo> <id>"
			return m, nil
		}
		id, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			m.status = "id inválido: " + parts[2]
			return m, nil
		}
		kind := parts[1]
		return m, m.mutationCmd("record:delete", func(ctx context.Context) error {
			return m.records.Delete(ctx, kind, id)
		})

	case "income:add":
		if len(parts) != 3 {
			m.status = "uso: income:add <aaaa-mm-dd> <monto>"
			return m, nil
		}
		date, err := time.Parse("2006-01-02", parts[1])
		if err != nil {
			m.status = "fecha inválida: " + parts[1]
			return m, nil
		}
		amount, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			m.status = "monto inválido: " + parts[2]
			return m, nil
		}
		return m, m.mutationCmd("income:add", func(ctx context.Context) error {
			return m.records.AddIncome(ctx, recordsdto.AddIncomeInput{Date: date, Amount: amount})
		})

	case "goal:set":
		if len(parts) != 3 {
			m.status = "uso: goal:set <tipo> <porcentaje>"
			return m, nil
		}
		value, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			m.status = "porcentaje inválido: " + parts[2]
			return m, nil
		}
		kind := parts[1]
		return m, m.mutationCmd("goal:set", func(ctx context.Context) error {
			return m.goals.Set(ctx, kind, value)
		})

	case "goal:clear":
		if len(parts) != 2 {
			m.status = "uso: goal:clear <tipo>"
			return m, nil
		}
		kind := parts[1]
		return m, m.mutationCmd("goal:clear", func(ctx context.Context) error {
			return m.goals.Clear(ctx, kind)
		})

	case "import":
		if len(parts) != 3 {
			m.status = "uso: import <tipo> <ruta.csv>"
			return m, nil
		}
		in := recordsdto.ImportInput{DataType: parts[1], Path: parts[2]}
		return m, func() tea.Msg {
			report, err := m.records.ImportCSV(context.Background(), in)
			if err != nil {
				return mutationDoneMsg{label: "import", err: err}
			}
			return mutationDoneMsg{
				label: fmt.Sprintf("import (%d importadas, %d fallidas)", report.Imported, report.Failed),
			}
		}

	case "logout":
		return m, m.logoutCmd()

	default:
		m.status = "comando desconocido: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m Model) enterAuthenticated(session authdto.SessionOutput) (tea.Model, tea.Cmd) {
	m.gate = gateAuthenticated
	m.email = session.Email
	m.activeTab = tabOverview
	m.status = "listo"
	m.propagateSize()
	return m, tea.Batch(
		m.overviewView.Init(),
		m.historyView.Init(),
		m.recordsView.Init(),
		m.goalsView.Init(),
		m.importView.Init(),
	)
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.loginView, _ = m.loginView.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.overviewView, _ = m.overviewView.Update(sz)
	m.historyView, _ = m.historyView.Update(sz)
	m.recordsView, _ = m.recordsView.Update(sz)
	m.goalsView, _ = m.goalsView.Update(sz)
	m.importView, _ = m.importView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) bootstrapCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.auth.Bootstrap(context.Background())
		return bootstrapMsg{session: session, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.auth.Logout(context.Background())}
	}
}

func (m Model) mutationCmd(label string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{label: label, err: fn(context.Background())}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// The login view takes credentials as plain strings; the auth port speaks DTOs.

type loginPortBridge struct{ p authPort }

func (b loginPortBridge) Login(ctx context.Context, email, password string) (authdto.SessionOutput, error) {
	return b.p.Login(ctx, authdto.LoginInput{Email: email, Password: password})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
