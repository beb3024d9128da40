package tui

import "github.com/charmbracelet/lipgloss"

var habitPalette = map[string]lipgloss.Color{
	"blue":   lipgloss.Color("33"),
	"green":  lipgloss.Color("42"),
	"purple": lipgloss.Color("135"),
	"amber":  lipgloss.Color("214"),
	"rose":   lipgloss.Color("204"),
	"cyan":   lipgloss.Color("51"),
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	todayHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	doneCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	plannedCellStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("135"))

	emptyCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cursorCellStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func habitColor(color string) lipgloss.Color {
	if c, ok := habitPalette[color]; ok {
		return c
	}
	return habitPalette["blue"]
}
