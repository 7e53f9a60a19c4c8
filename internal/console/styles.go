package console

import "github.com/charmbracelet/lipgloss"

// Paleta Catppuccin Mocha.
var colours = struct {
	Red, Peach, Yellow, Green, Blue, Lavender, Mauve string
	Text, Subtext0, Overlay0, Surface1, Base        string
}{
	Red:      "#f38ba8",
	Peach:    "#fab387",
	Yellow:   "#f9e2af",
	Green:    "#a6e3a1",
	Blue:     "#89b4fa",
	Lavender: "#b4befe",
	Mauve:    "#cba6f7",
	Text:     "#cdd6f4",
	Subtext0: "#a6adc8",
	Overlay0: "#6c7086",
	Surface1: "#45475a",
	Base:     "#1e1e2e",
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colours.Mauve)).
			Bold(true).
			MarginBottom(1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colours.Subtext0)).
			Padding(0, 1)

	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color(colours.Base)).
			Background(lipgloss.Color(colours.Lavender)).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colours.Surface1)).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colours.Blue)).
			Bold(true)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colours.Text))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colours.Overlay0))

	maskedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colours.Peach))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colours.Red)).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colours.Green))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colours.Overlay0)).
			MarginTop(1)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colours.Yellow))
)
