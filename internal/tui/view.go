package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/evanfuller/habitgrid/internal/models"
	"github.com/evanfuller/habitgrid/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateAddHabit, StateEditHabit:
		return m.form.View()
	case StateConfirmDelete:
		return fmt.Sprintf("\n  Delete habit %q and all its entries? (y/n)\n", m.deletingName)
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", m.month.Month(), m.month.Year())))
	b.WriteString("\n\n")

	today := time.Now().Format("2006-01-02")
	daysInMonth := m.daysInMonth()

	// Header row with day numbers
	var header strings.Builder
	header.WriteString(strings.Repeat(" ", 16))
	for d := 1; d <= daysInMonth; d++ {
		cell := fmt.Sprintf("%2d", d)
		key := m.dayKey(d)
		switch {
		case key == today:
			header.WriteString(todayHeaderStyle.Render(cell))
		case d == m.day:
			header.WriteString(cursorCellStyle.Render(cell))
		default:
			header.WriteString(headerStyle.Render(cell))
		}
	}
	b.WriteString(header.String())
	b.WriteString("\n")

	if len(m.habits) == 0 {
		b.WriteString("\n  No habits yet. Press 'a' to add one.\n")
	}

	for i, habit := range m.habits {
		name := habit.Name
		if len(name) > 15 {
			name = name[:15]
		}
		nameStyle := lipgloss.NewStyle().Foreground(habitColor(habit.Color))
		if i == m.row {
			nameStyle = nameStyle.Bold(true)
		}
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-16s", name)))

		for d := 1; d <= daysInMonth; d++ {
			st, hasEntry := habit.Entries.Get(m.dayKey(d))
			glyph := " " + cellGlyph(st, hasEntry)

			var style lipgloss.Style
			switch {
			case hasEntry && st == models.StatusDone:
				style = doneCellStyle
			case hasEntry && st == models.StatusPlanned:
				style = plannedCellStyle
			default:
				style = emptyCellStyle
			}
			if i == m.row && d == m.day {
				style = style.Inherit(cursorCellStyle)
			}
			b.WriteString(style.Render(glyph))
		}

		progress := stats.Project(habit, m.month, stats.ProgressMonthly)
		b.WriteString(fmt.Sprintf("  %d/%d %s", progress.Current, progress.Target, progress.Label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar())
	b.WriteString("\n")

	if m.errMessage != "" {
		b.WriteString(errorStyle.Render("✗ " + m.errMessage))
		b.WriteString("\n")
	} else if m.statusMessage != "" {
		b.WriteString(statusBarStyle.Render(m.statusMessage))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// statusBar shows the pooled month percentages and the selected habit's
// streaks
func (m Model) statusBar() string {
	completion := stats.MonthlyCompletion(m.habits, m.month)
	bar := fmt.Sprintf("Completion %d%%  Planned %d%%", completion.Completion, completion.Planned)

	if m.row < len(m.habits) {
		summary := stats.Summarize(m.habits[m.row], time.Now())
		bar += fmt.Sprintf("  |  %s: streak %dd, best %dd, 30d %d%%",
			summary.Name, summary.CurrentStreak, summary.BestStreak, summary.CompletionRate)
	}

	return statusBarStyle.Render(bar)
}

func (m Model) dayKey(d int) string {
	return fmt.Sprintf("%04d-%02d-%02d", m.month.Year(), int(m.month.Month()), d)
}

func cellGlyph(st models.Status, hasEntry bool) string {
	if !hasEntry {
		return "·"
	}
	if st == models.StatusDone {
		return "✓"
	}
	return "○"
}
