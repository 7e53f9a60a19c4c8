package console

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/domain/statistics"
)

const maxBarWidth = 30

type statsLoadedMsg struct {
	stats statistics.Stats
	err   error
}

type StatsModel struct {
	svc     *statistics.Service
	session sessions.Session

	stats   statistics.Stats
	loaded  bool
	loading bool
	err     error
}

func NewStatsModel(svc *statistics.Service, s sessions.Session) *StatsModel {
	return &StatsModel{svc: svc, session: s}
}

func (m *StatsModel) Init() tea.Cmd {
	m.loading = true
	svc, s := m.svc, m.session
	return func() tea.Msg {
		st, err := svc.Get(sessionCtx(context.Background(), s))
		return statsLoadedMsg{stats: st, err: err}
	}
}

func (m *StatsModel) Update(msg tea.Msg) (*StatsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.stats = msg.stats
			m.loaded = true
		}
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.Init()
		}
	}
	return m, nil
}

func (m *StatsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Statistics"))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	case !m.loaded:
		b.WriteString(mutedStyle.Render("loading..."))
		b.WriteString("\n")
	default:
		fmt.Fprintf(&b, "Owners: %d   Pets: %d   Avg pets per owner: %d\n\n",
			m.stats.TotalOwners, m.stats.TotalPets, m.stats.AveragePetsPerOwner)

		var peak int64
		for _, n := range m.stats.PetsByType {
			peak = max(peak, n)
		}
		for _, t := range pets.Types {
			n := m.stats.PetsByType[t]
			width := 0
			if peak > 0 {
				width = int(n * maxBarWidth / peak)
			}
			fmt.Fprintf(&b, "%-8s %s %d\n", t, barStyle.Render(strings.Repeat("█", width)), n)
		}
	}

	b.WriteString(helpStyle.Render("r reload"))
	return b.String()
}
