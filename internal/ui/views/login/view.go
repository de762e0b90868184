package login

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "fintrack/internal/modules/auth/dto"
	"fintrack/internal/platform/httpapi"
	"fintrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AuthPort interface {
	Login(ctx context.Context, email, password string) (authdto.SessionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// LoggedInMsg bubbles to the app model, which flips the gate to the
// authenticated layout.
type LoggedInMsg struct {
	Session authdto.SessionOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port       AuthPort
	email      textinput.Model
	password   textinput.Model
	focus      int
	submitting bool
	errMsg     string
	width      int
	height     int
}

func New(port AuthPort) Model {
	email := textinput.New()
	email.Placeholder = "correo@ejemplo.com"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "contraseña"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 120

	return Model{port: port, email: email, password: password}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoggedInMsg:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = loginErrorMessage(msg.Err)
			return m, nil
		}
		// App handles the successful transition.
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.password.Blur()
				return m, m.email.Focus()
			}
			m.email.Blur()
			return m, m.password.Focus()

		case "enter":
			if m.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.email.Value())
			password := m.password.Value()
			if email == "" || password == "" {
				m.errMsg = "Correo y contraseña son requeridos"
				return m, nil
			}
			m.submitting = true
			m.errMsg = ""
			return m, m.loginCmd(email, password)
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	cmds = append(cmds, cmd)
	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Iniciar Sesión") + "\n\n")
	sb.WriteString(theme.Muted.Render("Correo Electrónico") + "\n")
	sb.WriteString(m.email.View() + "\n\n")
	sb.WriteString(theme.Muted.Render("Contraseña") + "\n")
	sb.WriteString(m.password.View() + "\n\n")

	switch {
	case m.submitting:
		sb.WriteString(theme.Muted.Render("Iniciando sesión…"))
	case m.errMsg != "":
		sb.WriteString(theme.Bad.Render(m.errMsg))
	default:
		sb.WriteString(theme.Muted.Render("enter: entrar  tab: cambiar campo"))
	}

	card := theme.Pane.Width(48).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// ─── private ─────────────────────────────────────────────────────────────────

// loginErrorMessage prefers the server's detail message; the generic text
// covers responses without one (and transport failures).
func loginErrorMessage(err error) string {
	var apiErr *httpapi.Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return "Correo electrónico o contraseña incorrectos"
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.port.Login(context.Background(), email, password)
		return LoggedInMsg{Session: session, Err: err}
	}
}
