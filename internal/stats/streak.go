// Package stats derives presentation values from habit entry data. All
// functions are pure: they read a snapshot and never mutate it, and they take
// the reference date explicitly rather than consulting the wall clock.
package stats

import (
	"time"

	"github.com/evanfuller/habitgrid/internal/constants"
	"github.com/evanfuller/habitgrid/internal/models"
)

// StreakResult holds consecutive-done run lengths for one habit
type StreakResult struct {
	Current int
	Best    int
}

// Streaks computes the current and best streak of done days. The current
// streak is anchored at today or yesterday: if the most recent done day is
// older than yesterday the chain is broken and the current streak is 0.
// Frequency and target play no part; this is purely a function of the done
// date set.
func Streaks(entries models.EntryMap, today time.Time) StreakResult {
	days := entries.DoneDaysDesc()
	if len(days) == 0 {
		return StreakResult{}
	}

	todayKey := today.Format(constants.DateFormat)

	var current int
	if dayDiff(todayKey, days[0]) <= 1 {
		current = 1
		for i := 0; i < len(days)-1; i++ {
			if dayDiff(days[i], days[i+1]) != 1 {
				break
			}
			current++
		}
	}

	best, run := 1, 1
	for i := 0; i < len(days)-1; i++ {
		if dayDiff(days[i], days[i+1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}

	return StreakResult{Current: current, Best: best}
}

// dayDiff returns the number of calendar days from b up to a. Day keys are
// well-formed per the data model; a malformed key yields a huge diff and
// simply breaks the run.
func dayDiff(a, b string) int {
	ta, errA := time.Parse(constants.DateFormat, a)
	tb, errB := time.Parse(constants.DateFormat, b)
	if errA != nil || errB != nil {
		return int(^uint(0) >> 1)
	}
	return int(ta.Sub(tb).Hours() / 24)
}
