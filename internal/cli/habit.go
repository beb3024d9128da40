package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/evanfuller/habitgrid/internal/models"
	"github.com/evanfuller/habitgrid/internal/stats"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and all its entries."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
}

type HabitAddCmd struct {
	Name   string `arg:"" help:"Habit name."`
	Target int    `help:"Target days per week." default:"0"`
	Color  string `help:"Habit color (blue, green, purple, amber, rose, cyan)." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if _, ok := ctx.Store.HabitByName(c.Name); ok {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit, err := ctx.Store.AddHabit(models.HabitDraft{
		Name:   c.Name,
		Target: c.Target,
		Color:  c.Color,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%d/%s)\n", habit.Name, habit.EffectiveTarget(), habit.Frequency)
	return nil
}

type HabitEditCmd struct {
	Name    string `arg:"" help:"Habit name."`
	NewName string `help:"New habit name." default:""`
	Target  int    `help:"New target days per week." default:"0"`
	Color   string `help:"New habit color." default:""`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	habit, ok := ctx.Store.HabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	var changes models.HabitChanges
	if c.NewName != "" {
		changes.Name = &c.NewName
	}
	if c.Target != 0 {
		changes.Target = &c.Target
	}
	if c.Color != "" {
		changes.Color = &c.Color
	}
	if changes.Name == nil && changes.Target == nil && changes.Color == nil {
		return fmt.Errorf("nothing to change; pass --new-name, --target, or --color")
	}

	if err := ctx.Store.UpdateHabit(habit.ID, changes); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", c.Name)
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, ok := ctx.Store.HabitByName(c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Store.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q and its entries\n", c.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	now := time.Now()
	for _, habit := range habits {
		progress := stats.Project(habit, now, stats.ProgressMonthly)
		met := " "
		if progress.Current >= progress.Target {
			met = "*"
		}
		fmt.Printf("%s %-20s %s  %d/%d %s\n",
			met, habit.Name, strings.ToLower(habit.Color),
			progress.Current, progress.Target, progress.Label)
	}

	return nil
}
