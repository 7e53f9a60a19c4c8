package console

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pet-admin-console/internal/domain/owners"
	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/search"
)

type petsResultMsg search.Result[pets.Pet]

// petOwnersMsg trae las opciones del filtro por dueño.
type petOwnersMsg struct {
	owners []owners.Owner
	err    error
}

type PetsModel struct {
	svc       *pets.Service
	ownersSvc *owners.Service
	session   sessions.Session
	live      *search.Live[pets.Pet]
	results   chan<- tea.Msg

	// typeFilter y ownerFilter los lee fetch desde otro goroutine.
	typeFilter  atomic.Value // pets.Type
	ownerFilter atomic.Int64

	ownerOptions []owners.Owner

	input   textinput.Model
	query   string
	items   []pets.Pet
	cursor  int
	loading bool
	err     error
}

func NewPetsModel(svc *pets.Service, ownersSvc *owners.Service, s sessions.Session, interval time.Duration, results chan<- tea.Msg) *PetsModel {
	input := textinput.New()
	input.Placeholder = "Search by name, breed or owner..."
	input.CharLimit = 100
	input.Focus()

	m := &PetsModel{svc: svc, ownersSvc: ownersSvc, session: s, input: input, results: results}
	m.typeFilter.Store(pets.Type(""))

	fetch := func(ctx context.Context, query string) ([]pets.Pet, error) {
		return svc.List(sessionCtx(ctx, s), pets.ListFilter{Type: m.Type(), OwnerID: m.OwnerID(), Query: query})
	}
	m.live = search.NewLive(interval, fetch, func(r search.Result[pets.Pet]) {
		results <- petsResultMsg(r)
	})
	return m
}

func (m *PetsModel) Init() tea.Cmd {
	m.loading = true
	m.live.Refresh(m.query)
	m.loadOwners()
	return textinput.Blink
}

// loadOwners llega por el mismo canal que los resultados de búsqueda.
func (m *PetsModel) loadOwners() {
	if m.ownersSvc == nil {
		return
	}
	svc, s, results := m.ownersSvc, m.session, m.results
	go func() {
		list, err := svc.List(sessionCtx(context.Background(), s), "")
		results <- petOwnersMsg{owners: list, err: err}
	}()
}

func (m *PetsModel) Close() {
	m.live.Close()
}

func (m *PetsModel) Type() pets.Type {
	return m.typeFilter.Load().(pets.Type)
}

func (m *PetsModel) OwnerID() int64 { return m.ownerFilter.Load() }

func (m *PetsModel) Items() []pets.Pet { return m.items }

func (m *PetsModel) OwnerOptions() []owners.Owner { return m.ownerOptions }

// cycleOwner recorre "todos" -> dueños en orden -> "todos".
func (m *PetsModel) cycleOwner() {
	current := m.OwnerID()
	next := int64(0)
	for i, o := range m.ownerOptions {
		if o.ID != current {
			continue
		}
		if i+1 < len(m.ownerOptions) {
			next = m.ownerOptions[i+1].ID
		}
		m.ownerFilter.Store(next)
		return
	}
	if current == 0 && len(m.ownerOptions) > 0 {
		next = m.ownerOptions[0].ID
	}
	m.ownerFilter.Store(next)
}

func (m *PetsModel) ownerLabel() string {
	id := m.OwnerID()
	if id == 0 {
		return "ALL OWNERS"
	}
	for _, o := range m.ownerOptions {
		if o.ID == id {
			return o.FullName()
		}
	}
	return fmt.Sprintf("owner #%d", id)
}

// cycleType recorre "todos" -> DOG -> ... -> OTHER -> "todos".
func (m *PetsModel) cycleType(step int) {
	options := append([]pets.Type{""}, pets.Types...)
	current := 0
	for i, t := range options {
		if t == m.Type() {
			current = i
			break
		}
	}
	next := (current + step + len(options)) % len(options)
	m.typeFilter.Store(options[next])
}

func (m *PetsModel) Update(msg tea.Msg) (*PetsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case petsResultMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.items = msg.Items
		}
		if m.cursor >= len(m.items) {
			m.cursor = max(len(m.items)-1, 0)
		}
		return m, nil

	case petOwnersMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.ownerOptions = msg.owners
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
		case "tab", "shift+tab":
			step := 1
			if msg.String() == "shift+tab" {
				step = -1
			}
			m.cycleType(step)
			m.loading = true
			m.live.Refresh(m.query)
			return m, nil
		case "ctrl+o":
			m.cycleOwner()
			m.loading = true
			m.live.Refresh(m.query)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.query {
		m.query = v
		m.loading = true
		m.live.Type(v)
	}
	return m, cmd
}

func (m *PetsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pets"))
	b.WriteString("\n")

	filter := "ALL"
	if t := m.Type(); t != "" {
		filter = string(t)
	}
	b.WriteString(m.input.View())
	b.WriteString("  ")
	b.WriteString(activeTabStyle.Render(filter))
	b.WriteString(" ")
	b.WriteString(activeTabStyle.Render(m.ownerLabel()))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	case len(m.items) == 0 && !m.loading:
		b.WriteString(mutedStyle.Render("No pets found"))
	}

	for i, p := range m.items {
		line := fmt.Sprintf("%-16s %-8s %-20s %3d y  %s",
			truncate(p.Name, 16), p.Type, truncate(p.Breed, 20), m.svc.Age(p), p.OwnerName)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	if m.loading {
		b.WriteString(mutedStyle.Render("searching..."))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("type to search • tab cycle type • ctrl+o cycle owner • ↑/↓ move"))
	return b.String()
}
