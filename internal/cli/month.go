package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/evanfuller/habitgrid/internal/constants"
	"github.com/evanfuller/habitgrid/internal/models"
	"github.com/evanfuller/habitgrid/internal/stats"
)

type MonthCmd struct {
	Month string `help:"Month to show in YYYY-MM format (default: current)." default:""`
}

func (c *MonthCmd) Run(ctx *Context) error {
	month, err := ParseMonth(c.Month)
	if err != nil {
		return err
	}

	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'habitgrid habit add'.")
		return nil
	}

	daysInMonth := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
	today := time.Now().Format(constants.DateFormat)

	fmt.Printf("%s %d\n\n", month.Month(), month.Year())

	// Day-of-month header
	var header strings.Builder
	header.WriteString(fmt.Sprintf("%-16s", ""))
	for d := 1; d <= daysInMonth; d++ {
		key := fmt.Sprintf("%04d-%02d-%02d", month.Year(), int(month.Month()), d)
		cell := fmt.Sprintf("%2d", d%100)
		if key == today {
			header.WriteString(todayStyle.Render(cell))
		} else {
			header.WriteString(headerStyle.Render(cell))
		}
	}
	fmt.Println(header.String())

	for _, habit := range habits {
		var row strings.Builder
		name := habit.Name
		if len(name) > 15 {
			name = name[:15]
		}
		row.WriteString(HabitNameStyle(habit.Color).Render(fmt.Sprintf("%-16s", name)))

		for d := 1; d <= daysInMonth; d++ {
			key := fmt.Sprintf("%04d-%02d-%02d", month.Year(), int(month.Month()), d)
			st, hasEntry := habit.Entries.Get(key)
			glyph := " " + StatusGlyph(st, hasEntry)
			switch {
			case hasEntry && st == models.StatusDone:
				row.WriteString(doneStyle.Render(glyph))
			case hasEntry && st == models.StatusPlanned:
				row.WriteString(plannedStyle.Render(glyph))
			default:
				row.WriteString(emptyStyle.Render(glyph))
			}
		}

		progress := stats.Project(habit, month, stats.ProgressMonthly)
		row.WriteString(fmt.Sprintf("  %d/%d %s", progress.Current, progress.Target, progress.Label))
		fmt.Println(row.String())
	}

	completion := stats.MonthlyCompletion(habits, month)
	fmt.Printf("\nCompletion: %d%%  Planned: %d%%\n", completion.Completion, completion.Planned)

	return nil
}
