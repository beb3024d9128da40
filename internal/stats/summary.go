package stats

import (
	"math"
	"time"

	"github.com/evanfuller/habitgrid/internal/constants"
	"github.com/evanfuller/habitgrid/internal/models"
)

// Summary bundles the per-habit numbers shown on the stats view
type Summary struct {
	Name           string
	CurrentStreak  int
	BestStreak     int
	CompletionRate int // done days over the trailing 30 days, 0-100
}

// Summarize computes a habit's streaks and its trailing-30-day completion
// rate relative to the given day
func Summarize(h models.Habit, today time.Time) Summary {
	streaks := Streaks(h.Entries, today)

	done := 0
	for i := 0; i <= 30; i++ {
		day := today.AddDate(0, 0, -i).Format(constants.DateFormat)
		if h.Entries[day] == models.StatusDone {
			done++
		}
	}

	return Summary{
		Name:           h.Name,
		CurrentStreak:  streaks.Current,
		BestStreak:     streaks.Best,
		CompletionRate: int(math.Round(float64(done) / 30 * 100)),
	}
}
