package stats

import (
	"math"
	"time"

	"github.com/evanfuller/habitgrid/internal/constants"
	"github.com/evanfuller/habitgrid/internal/models"
)

// ProgressMode selects the viewing window for a habit's progress
type ProgressMode string

const (
	ProgressMonthly ProgressMode = "monthly"
	ProgressWeekly  ProgressMode = "weekly"
)

// ProgressResult is a habit's progress against its period target. The sole
// goal-met criterion used by presentation layers is Current >= Target.
type ProgressResult struct {
	Current int
	Target  int
	Label   string // "mo" or "wk"
}

// Project computes a habit's progress for the given window. For monthly mode
// the window is any date inside the displayed month; for weekly mode it is
// the Monday starting the viewed week. Monthly habits have no weekly
// projection and always fall back to the monthly one.
func Project(h models.Habit, window time.Time, mode ProgressMode) ProgressResult {
	target := h.EffectiveTarget()

	if h.Frequency == models.FrequencyWeekly {
		if mode == ProgressWeekly {
			current := 0
			for i := 0; i < 7; i++ {
				day := window.AddDate(0, 0, i).Format(constants.DateFormat)
				if h.Entries[day] == models.StatusDone {
					current++
				}
			}
			return ProgressResult{Current: current, Target: target, Label: "wk"}
		}

		return ProgressResult{
			Current: h.Entries.CountDoneWithPrefix(window.Format(constants.MonthFormat)),
			Target:  int(math.Round(float64(target) * constants.WeeksPerMonth)),
			Label:   "mo",
		}
	}

	return ProgressResult{
		Current: h.Entries.CountDoneWithPrefix(window.Format(constants.MonthFormat)),
		Target:  target,
		Label:   "mo",
	}
}
