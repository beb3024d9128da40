package cli

import (
	"fmt"
	"time"

	"github.com/evanfuller/habitgrid/internal/stats"
)

type StatsCmd struct {
	Month string `help:"Month to aggregate in YYYY-MM format (default: current)." default:""`
}

func (c *StatsCmd) Run(ctx *Context) error {
	month, err := ParseMonth(c.Month)
	if err != nil {
		return err
	}

	habits := ctx.Store.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	now := time.Now()
	fmt.Printf("%-20s %8s %8s %8s\n", "Habit", "Streak", "Best", "30d")
	for _, habit := range habits {
		summary := stats.Summarize(habit, now)
		fmt.Printf("%-20s %7dd %7dd %7d%%\n",
			summary.Name, summary.CurrentStreak, summary.BestStreak, summary.CompletionRate)
	}

	completion := stats.MonthlyCompletion(habits, month)
	fmt.Printf("\n%s %d: completion %d%%, planned %d%%\n",
		month.Month(), month.Year(), completion.Completion, completion.Planned)

	return nil
}
