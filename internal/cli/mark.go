package cli

import (
	"fmt"
)

type MarkCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *MarkCmd) Run(ctx *Context) error {
	habit, ok := ctx.Store.HabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	day, err := ParseDay(c.Date)
	if err != nil {
		return err
	}

	status, hasEntry, err := ctx.Store.ToggleEntry(habit.ID, day)
	if err != nil {
		return err
	}

	if !hasEntry {
		fmt.Printf("Cleared %q for %s\n", c.Name, day)
		return nil
	}
	fmt.Printf("Marked %q %s for %s\n", c.Name, status, day)
	return nil
}
