// Package console es la consola de administración en terminal: login,
// dueños y mascotas con búsqueda en vivo, alta de dueños y estadísticas.
package console

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pet-admin-console/internal/domain/owners"
	"pet-admin-console/internal/domain/pets"
	"pet-admin-console/internal/domain/sessions"
	"pet-admin-console/internal/domain/statistics"
)

type Screen int

const (
	ScreenLogin Screen = iota
	ScreenOwners
	ScreenOwnerForm
	ScreenPets
	ScreenStats
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenOwners:
		return "owners"
	case ScreenOwnerForm:
		return "owner_form"
	case ScreenPets:
		return "pets"
	case ScreenStats:
		return "statistics"
	default:
		return "unknown"
	}
}

type Deps struct {
	Sessions *sessions.Service
	Owners   *owners.Service
	Pets     *pets.Service
	Stats    *statistics.Service

	// Debounce <= 0 => búsqueda inmediata en cada keystroke.
	Debounce time.Duration
}

// Mensajes
type loggedInMsg struct{ session sessions.Session }

type loggedOutMsg struct{}

type errMsg struct{ err error }

type navigateMsg struct{ screen Screen }

// App es el modelo raíz. Las pantallas con búsqueda en vivo entregan sus
// resultados por results desde otros goroutines; waitForResult los trae
// de vuelta al loop de bubbletea.
type App struct {
	deps Deps

	screen  Screen
	session sessions.Session
	width   int
	height  int
	err     error

	results chan tea.Msg

	login     *LoginModel
	ownersV   *OwnersModel
	ownerForm *OwnerFormModel
	petsV     *PetsModel
	statsV    *StatsModel
}

func NewApp(deps Deps) *App {
	return &App{
		deps:    deps,
		screen:  ScreenLogin,
		results: make(chan tea.Msg, 16),
		login:   NewLoginModel(deps.Sessions),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.login.Init(), waitForResult(a.results))
}

func waitForResult(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func (a *App) Screen() Screen { return a.screen }

func (a *App) Session() (sessions.Session, bool) {
	return a.session, a.session.ID != ""
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.Close()
			return a, tea.Quit
		}
		if a.screen != ScreenLogin {
			switch msg.String() {
			case "f1":
				return a.navigate(ScreenOwners)
			case "f2":
				return a.navigate(ScreenPets)
			case "f3":
				return a.navigate(ScreenStats)
			case "ctrl+l":
				return a, a.logout()
			}
		}

	case loggedInMsg:
		a.session = msg.session
		return a.navigate(ScreenOwners)

	case loggedOutMsg:
		a.teardownScreens()
		a.session = sessions.Session{}
		a.login = NewLoginModel(a.deps.Sessions)
		a.screen = ScreenLogin
		return a, a.login.Init()

	case navigateMsg:
		return a.navigate(msg.screen)

	case errMsg:
		a.err = msg.err
		return a, nil

	// Los resultados van a su pantalla aunque no sea la visible; siempre
	// hay que re-armar la escucha del canal.
	case ownersResultMsg:
		var cmd tea.Cmd
		if a.ownersV != nil {
			a.ownersV, cmd = a.ownersV.Update(msg)
		}
		return a, tea.Batch(cmd, waitForResult(a.results))

	case petsResultMsg, petOwnersMsg:
		var cmd tea.Cmd
		if a.petsV != nil {
			a.petsV, cmd = a.petsV.Update(msg)
		}
		return a, tea.Batch(cmd, waitForResult(a.results))

	case ownerSavedMsg:
		a.screen = ScreenOwners
		if a.ownersV != nil {
			a.ownersV.Saved(msg.owner)
		}
		return a, nil
	}

	return a, a.delegate(msg)
}

func (a *App) delegate(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.screen {
	case ScreenLogin:
		a.login, cmd = a.login.Update(msg)
	case ScreenOwners:
		if a.ownersV != nil {
			a.ownersV, cmd = a.ownersV.Update(msg)
		}
	case ScreenOwnerForm:
		if a.ownerForm != nil {
			a.ownerForm, cmd = a.ownerForm.Update(msg)
		}
	case ScreenPets:
		if a.petsV != nil {
			a.petsV, cmd = a.petsV.Update(msg)
		}
	case ScreenStats:
		if a.statsV != nil {
			a.statsV, cmd = a.statsV.Update(msg)
		}
	}
	return cmd
}

func (a *App) navigate(screen Screen) (tea.Model, tea.Cmd) {
	a.err = nil
	a.screen = screen

	switch screen {
	case ScreenOwners:
		if a.ownersV == nil {
			a.ownersV = NewOwnersModel(a.deps.Owners, a.session, a.deps.Debounce, a.results)
		}
		return a, a.ownersV.Init()
	case ScreenOwnerForm:
		a.ownerForm = NewOwnerFormModel(a.deps.Owners, a.session)
		return a, a.ownerForm.Init()
	case ScreenPets:
		if a.petsV == nil {
			a.petsV = NewPetsModel(a.deps.Pets, a.deps.Owners, a.session, a.deps.Debounce, a.results)
		}
		return a, a.petsV.Init()
	case ScreenStats:
		a.statsV = NewStatsModel(a.deps.Stats, a.session)
		return a, a.statsV.Init()
	}
	return a, nil
}

func (a *App) logout() tea.Cmd {
	svc, id := a.deps.Sessions, a.session.ID
	return func() tea.Msg {
		if err := svc.Logout(context.Background(), id); err != nil {
			return errMsg{err: err}
		}
		return loggedOutMsg{}
	}
}

// Close es el teardown: cancela cualquier búsqueda pendiente o en vuelo.
func (a *App) Close() {
	a.teardownScreens()
}

func (a *App) teardownScreens() {
	if a.ownersV != nil {
		a.ownersV.Close()
		a.ownersV = nil
	}
	if a.petsV != nil {
		a.petsV.Close()
		a.petsV = nil
	}
	a.ownerForm = nil
	a.statsV = nil
}

func (a *App) View() string {
	var content string
	switch a.screen {
	case ScreenLogin:
		content = a.login.View()
	case ScreenOwners:
		content = a.header() + a.ownersV.View()
	case ScreenOwnerForm:
		content = a.header() + a.ownerForm.View()
	case ScreenPets:
		content = a.header() + a.petsV.View()
	case ScreenStats:
		content = a.header() + a.statsV.View()
	}

	if a.err != nil {
		content += "\n" + errorStyle.Render("Error: "+a.err.Error())
	}
	if a.width > 0 {
		return lipgloss.NewStyle().Width(a.width).Render(content)
	}
	return content
}

func (a *App) header() string {
	tabs := []struct {
		label  string
		screen Screen
	}{
		{"F1 Owners", ScreenOwners},
		{"F2 Pets", ScreenPets},
		{"F3 Statistics", ScreenStats},
	}
	rendered := make([]string, 0, len(tabs)+1)
	for _, t := range tabs {
		style := tabStyle
		if t.screen == a.screen || (t.screen == ScreenOwners && a.screen == ScreenOwnerForm) {
			style = activeTabStyle
		}
		rendered = append(rendered, style.Render(t.label))
	}

	user := a.session.Username
	if a.session.IsAdmin() {
		user += " (admin)"
	}
	rendered = append(rendered, mutedStyle.Render("  "+user+"  ctrl+l logout"))
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...) + "\n\n"
}

// sessionCtx arma el contexto que esperan los services.
func sessionCtx(ctx context.Context, s sessions.Session) context.Context {
	return sessions.WithSession(ctx, s)
}
