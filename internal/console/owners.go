package console

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pet-admin-console/internal/domain/owners"
	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/search"
)

type ownersResultMsg search.Result[owners.View]

type OwnersModel struct {
	svc     *owners.Service
	session sessions.Session
	live    *search.Live[owners.View]

	input   textinput.Model
	query   string
	items   []owners.View
	cursor  int
	loading bool
	err     error
	notice  string
}

func NewOwnersModel(svc *owners.Service, s sessions.Session, interval time.Duration, results chan<- tea.Msg) *OwnersModel {
	input := textinput.New()
	input.Placeholder = "Search by name or email..."
	input.CharLimit = 100
	input.Focus()

	fetch := func(ctx context.Context, query string) ([]owners.View, error) {
		ctx = sessionCtx(ctx, s)
		items, err := svc.List(ctx, query)
		if err != nil {
			return nil, err
		}
		return svc.Views(ctx, items), nil
	}

	return &OwnersModel{
		svc:     svc,
		session: s,
		input:   input,
		live: search.NewLive(interval, fetch, func(r search.Result[owners.View]) {
			results <- ownersResultMsg(r)
		}),
	}
}

// Init hace la carga inicial sin debounce.
func (m *OwnersModel) Init() tea.Cmd {
	m.loading = true
	m.live.Refresh(m.query)
	return textinput.Blink
}

func (m *OwnersModel) Close() {
	m.live.Close()
}

// Saved vuelve del formulario de alta y recarga la lista.
func (m *OwnersModel) Saved(o owners.Owner) {
	m.notice = fmt.Sprintf("Owner %s created", o.FullName())
	m.loading = true
	m.live.Refresh(m.query)
}

func (m *OwnersModel) Items() []owners.View { return m.items }

func (m *OwnersModel) Update(msg tea.Msg) (*OwnersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ownersResultMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.items = msg.Items
		}
		if m.cursor >= len(m.items) {
			m.cursor = max(len(m.items)-1, 0)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil
		case "ctrl+n":
			if !m.session.IsAdmin() {
				m.notice = "Only administrators can add owners"
				return m, nil
			}
			return m, func() tea.Msg { return navigateMsg{screen: ScreenOwnerForm} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.query {
		m.query = v
		m.notice = ""
		m.loading = true
		m.live.Type(v)
	}
	return m, cmd
}

func (m *OwnersModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Owners"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	case len(m.items) == 0 && !m.loading:
		b.WriteString(mutedStyle.Render("No owners found"))
	}

	for i, o := range m.items {
		line := fmt.Sprintf("%-24s %-26s %-18s %-20s %d pets",
			truncate(o.FullName, 24), truncate(o.Email, 26), o.Phone, truncate(o.Address, 20), o.PetCount)
		style := rowStyle
		if o.Masked {
			style = maskedStyle
		}
		if i == m.cursor {
			style = selectedStyle
			line = "> " + line
		} else {
			line = "  " + line
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString(mutedStyle.Render("searching..."))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(successStyle.Render(m.notice))
		b.WriteString("\n")
	}

	help := "type to search • ↑/↓ move"
	if m.session.IsAdmin() {
		help += " • ctrl+n new owner"
	}
	b.WriteString(helpStyle.Render(help))
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
