package stats

import (
	"testing"

	"github.com/evanfuller/habitgrid/internal/models"
)

func TestSummarize(t *testing.T) {
	today := day("2026-08-29")

	habit := weeklyHabit("meditate", 3, models.EntryMap{
		"2026-08-27": models.StatusDone,
		"2026-08-28": models.StatusDone,
		"2026-08-29": models.StatusDone,
		"2026-08-10": models.StatusDone,
		"2026-08-11": models.StatusDone,
		"2026-08-12": models.StatusDone,
		"2026-08-13": models.StatusDone,
		"2026-06-01": models.StatusDone, // outside the 30-day window
	})

	got := Summarize(habit, today)

	if got.Name != "meditate" {
		t.Errorf("Name = %q, want meditate", got.Name)
	}
	if got.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", got.CurrentStreak)
	}
	if got.BestStreak != 4 {
		t.Errorf("BestStreak = %d, want 4", got.BestStreak)
	}
	// 7 done days inside the window -> round(7/30*100) = 23
	if got.CompletionRate != 23 {
		t.Errorf("CompletionRate = %d, want 23", got.CompletionRate)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(weeklyHabit("new", 3, nil), day("2026-08-29"))
	if got.CurrentStreak != 0 || got.BestStreak != 0 || got.CompletionRate != 0 {
		t.Errorf("Summarize() on empty habit = %+v, want zeros", got)
	}
}
