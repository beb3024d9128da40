package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/evanfuller/habitgrid/internal/models"
)

// CompletionResult holds pooled percentages for one calendar month
type CompletionResult struct {
	Completion int // 0-100
	Planned    int // 0-100
}

// MonthlyCompletion computes pooled done and planned percentages for a set
// of habits over the month containing the given date. Each habit contributes
// a frequency-adjusted monthly target; done/planned entries are pooled across
// habits rather than averaged per habit. Both percentages are capped at 100
// so over-achievement never overflows the displayed bar.
func MonthlyCompletion(habits []models.Habit, month time.Time) CompletionResult {
	if len(habits) == 0 {
		return CompletionResult{}
	}

	daysInMonth := daysIn(month)

	var totalTarget, totalDone, totalPlanned int
	for _, h := range habits {
		totalTarget += monthlyTarget(h, daysInMonth)

		for d := 1; d <= daysInMonth; d++ {
			key := dayKey(month.Year(), month.Month(), d)
			switch h.Entries[key] {
			case models.StatusDone:
				totalDone++
			case models.StatusPlanned:
				totalPlanned++
			}
		}
	}

	if totalTarget == 0 {
		return CompletionResult{}
	}

	return CompletionResult{
		Completion: cappedPercent(totalDone, totalTarget),
		Planned:    cappedPercent(totalPlanned, totalTarget),
	}
}

// monthlyTarget converts a habit's target into occurrences for a month of
// the given length, capped at the number of days in the month
func monthlyTarget(h models.Habit, daysInMonth int) int {
	target := h.EffectiveTarget()
	monthly := target
	if h.Frequency == models.FrequencyWeekly {
		monthly = int(math.Round(float64(target) * float64(daysInMonth) / 7.0))
	}
	if monthly > daysInMonth {
		monthly = daysInMonth
	}
	return monthly
}

func cappedPercent(part, whole int) int {
	pct := int(math.Round(float64(part) / float64(whole) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

func daysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

func dayKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}
