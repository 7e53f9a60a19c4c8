package console

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/ports/auth"
)

type LoginModel struct {
	svc *sessions.Service

	username textinput.Model
	password textinput.Model
	focus    int

	submitting bool
	err        string
}

type loginFailedMsg struct{ err error }

func NewLoginModel(svc *sessions.Service) *LoginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 50
	username.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colours.Blue))
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colours.Blue))

	return &LoginModel{svc: svc, username: username, password: password}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (*LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginFailedMsg:
		m.submitting = false
		m.err = loginError(msg.err)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.toggleFocus()
			return m, nil
		case "enter":
			if m.focus == 0 {
				m.toggleFocus()
				return m, nil
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *LoginModel) toggleFocus() {
	if m.focus == 0 {
		m.focus = 1
		m.username.Blur()
		m.password.Focus()
		return
	}
	m.focus = 0
	m.password.Blur()
	m.username.Focus()
}

func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.submitting = true
	m.err = ""

	svc := m.svc
	username, password := strings.TrimSpace(m.username.Value()), m.password.Value()
	return func() tea.Msg {
		s, err := svc.Login(context.Background(), username, password)
		if err != nil {
			return loginFailedMsg{err: err}
		}
		return loggedInMsg{session: s}
	}
}

func loginError(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid username or password"
	case errors.Is(err, sessions.ErrInvalidInput):
		return "Username and password are required"
	default:
		return err.Error()
	}
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pet Admin Console"))
	b.WriteString("\n")
	b.WriteString(m.username.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n")

	switch {
	case m.submitting:
		b.WriteString(mutedStyle.Render("signing in..."))
	case m.err != "":
		b.WriteString(errorStyle.Render(m.err))
	}
	b.WriteString(helpStyle.Render("tab switch field • enter sign in • ctrl+c quit"))
	return panelStyle.Render(b.String())
}
