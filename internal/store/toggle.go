package store

import (
	"fmt"
	"time"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/evanfuller/habitgrid/internal/constants"
	"github.com/evanfuller/habitgrid/internal/logger"
	"github.com/evanfuller/habitgrid/internal/models"
)

// NextStatus derives the status a toggle moves a day to, relative to today.
// The cycle depends on where the day sits in time:
//
//	future: absent -> planned -> absent (a future day cannot be done)
//	today:  absent -> planned -> done -> absent
//	past:   absent -> done -> absent (planning the past is meaningless)
//
// The second return value is false when the toggle clears the entry.
func NextStatus(current models.Status, hasEntry bool, day, today string) (models.Status, bool) {
	switch {
	case day > today: // future
		if hasEntry && current == models.StatusPlanned {
			return "", false
		}
		return models.StatusPlanned, true

	case day == today:
		if !hasEntry {
			return models.StatusPlanned, true
		}
		if current == models.StatusPlanned {
			return models.StatusDone, true
		}
		return "", false

	default: // past
		if hasEntry && current == models.StatusDone {
			return "", false
		}
		return models.StatusDone, true
	}
}

// ToggleEntry cycles the status of one habit/day and reconciles the change
// with the backend optimistically: the cache is mutated before the remote
// write is issued, and restored verbatim from a pre-toggle snapshot if the
// write fails. Returns the applied status (second value false when the day
// was cleared).
//
// Two toggles on the same habit/day racing before the first settles are
// last-applied-wins on rollback; the store does not serialize writes per
// key.
func (s *Store) ToggleEntry(habitID, day string) (models.Status, bool, error) {
	if _, err := time.Parse(constants.DateFormat, day); err != nil {
		return "", false, fmt.Errorf("invalid day %q: %w", day, err)
	}

	today := s.now().Format(constants.DateFormat)

	// Snapshot and apply under the lock, before any network involvement,
	// so the caller sees instant feedback.
	s.mu.Lock()
	var habit *models.Habit
	for i := range s.habits {
		if s.habits[i].ID == habitID {
			habit = &s.habits[i]
			break
		}
	}
	if habit == nil {
		s.mu.Unlock()
		return "", false, &NotFoundError{HabitID: habitID}
	}

	snapshot := cloneHabits(s.habits)

	current, hasEntry := habit.Entries.Get(day)
	next, keep := NextStatus(current, hasEntry, day, today)
	if keep {
		habit.Entries.Set(day, next)
	} else {
		habit.Entries.Unset(day)
	}
	s.mu.Unlock()

	// Remote write outside the lock; pure readers may observe the applied
	// state while the write is in flight.
	var err error
	if keep {
		err = s.provider.UpsertEntry(habitID, day, next, s.identity.UserID())
	} else {
		err = s.provider.DeleteEntry(habitID, day)
	}

	if err != nil {
		s.mu.Lock()
		s.habits = snapshot
		s.mu.Unlock()
		logger.Warn("toggle rolled back", "habit", habitID, "day", day, "error", err)
		return "", false, &DataAccessError{Op: "toggle entry", Err: err}
	}

	s.logCommit(habitID, day, snapshot)
	return next, keep, nil
}

// logCommit records a structure hash of the cache before and after the
// toggle so drift from concurrent toggles on the same key shows up in debug
// logs
func (s *Store) logCommit(habitID, day string, snapshot []models.Habit) {
	before, err := hashstructure.Hash(snapshot, hashstructure.FormatV2, nil)
	if err != nil {
		return
	}
	after, err := hashstructure.Hash(s.Habits(), hashstructure.FormatV2, nil)
	if err != nil {
		return
	}
	logger.Debug("toggle committed", "habit", habitID, "day", day, "before", before, "after", after)
}
