package cli

import "github.com/charmbracelet/lipgloss"

var palette = map[string]lipgloss.Color{
	"blue":   lipgloss.Color("33"),
	"green":  lipgloss.Color("42"),
	"purple": lipgloss.Color("135"),
	"amber":  lipgloss.Color("214"),
	"rose":   lipgloss.Color("204"),
	"cyan":   lipgloss.Color("51"),
}

var (
	doneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	plannedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	todayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

// HabitNameStyle colors a habit label with its palette color
func HabitNameStyle(color string) lipgloss.Style {
	c, ok := palette[color]
	if !ok {
		c = palette["blue"]
	}
	return lipgloss.NewStyle().Foreground(c)
}
