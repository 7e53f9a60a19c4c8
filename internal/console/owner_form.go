package console

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pet-admin-console/internal/domain/owners"
	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/phone"
)

type ownerField int

const (
	fieldFirstName ownerField = iota
	fieldLastName
	fieldEmail
	fieldPhone
	fieldAddress
	fieldCount
)

var ownerFieldLabels = [fieldCount]string{"First name", "Last name", "Email", "Phone", "Address"}

type ownerSavedMsg struct{ owner owners.Owner }

type ownerSaveFailedMsg struct{ err error }

type OwnerFormModel struct {
	svc     *owners.Service
	session sessions.Session

	inputs     [fieldCount]textinput.Model
	focus      ownerField
	submitting bool
	err        string
}

func NewOwnerFormModel(svc *owners.Service, s sessions.Session) *OwnerFormModel {
	m := &OwnerFormModel{svc: svc, session: s}
	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = "  "
		in.CharLimit = 100
		in.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colours.Blue))
		m.inputs[i] = in
	}
	m.inputs[fieldEmail].Placeholder = "owner@example.com"
	m.inputs[fieldPhone].Placeholder = "+7 XXX XXX XX XX"
	// El texto crudo pegado ("8 (999) 123-45-67") es más largo que el
	// formateado; el corte a 11 dígitos lo hace FormatPhoneNumber.
	m.inputs[fieldPhone].CharLimit = 32
	m.inputs[fieldAddress].Placeholder = "City, street"
	m.inputs[fieldFirstName].Focus()
	return m
}

func (m *OwnerFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Value expone el valor actual de un campo (tests y render).
func (m *OwnerFormModel) Value(f ownerField) string {
	return m.inputs[f].Value()
}

func (m *OwnerFormModel) Update(msg tea.Msg) (*OwnerFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ownerSaveFailedMsg:
		m.submitting = false
		m.err = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return navigateMsg{screen: ScreenOwners} }
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case "enter":
			if m.focus < fieldCount-1 {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			return m, m.submit()
		case "ctrl+s":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	// El teléfono se reformatea en cada keystroke.
	if m.focus == fieldPhone {
		raw := m.inputs[fieldPhone].Value()
		if formatted := phone.FormatPhoneNumber(raw); formatted != raw {
			m.inputs[fieldPhone].SetValue(formatted)
			m.inputs[fieldPhone].CursorEnd()
		}
	}
	return m, cmd
}

func (m *OwnerFormModel) setFocus(f ownerField) {
	m.inputs[m.focus].Blur()
	m.focus = f
	m.inputs[m.focus].Focus()
}

func (m *OwnerFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.submitting = true
	m.err = ""

	in := owners.Input{
		FirstName: m.inputs[fieldFirstName].Value(),
		LastName:  m.inputs[fieldLastName].Value(),
		Email:     m.inputs[fieldEmail].Value(),
		Phone:     m.inputs[fieldPhone].Value(),
		Address:   m.inputs[fieldAddress].Value(),
	}
	svc, s := m.svc, m.session
	return func() tea.Msg {
		o, err := svc.Create(sessionCtx(context.Background(), s), in)
		if err != nil {
			return ownerSaveFailedMsg{err: err}
		}
		return ownerSavedMsg{owner: o}
	}
}

func (m *OwnerFormModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New owner"))
	b.WriteString("\n")
	for i, in := range m.inputs {
		label := ownerFieldLabels[i]
		if ownerField(i) == m.focus {
			label = selectedStyle.Render(label)
		} else {
			label = mutedStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	switch {
	case m.submitting:
		b.WriteString(mutedStyle.Render("saving..."))
	case m.err != "":
		b.WriteString(errorStyle.Render(m.err))
	}
	b.WriteString(helpStyle.Render("tab next field • ctrl+s save • esc cancel"))
	return panelStyle.Render(b.String())
}
