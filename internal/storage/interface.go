package storage

import "github.com/evanfuller/habitgrid/internal/models"

// Provider is the data-access interface the habit store is built on. The
// store treats every call as an opaque remote operation that eventually
// resolves success or failure; retry, timeout, and backoff are policies of
// the implementation, not the caller.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits. CreateHabit assigns the id and creation timestamp and returns
	// the stored record. DeleteHabit cascades deletion of the habit's entries.
	FetchHabits(userID string) ([]models.Habit, error)
	CreateHabit(userID string, draft models.HabitDraft) (models.Habit, error)
	UpdateHabit(id string, changes models.HabitChanges) (models.Habit, error)
	DeleteHabit(id string) error

	// Entries. (habitID, day) is the conflict key: a second upsert for the
	// same key overwrites rather than duplicating.
	UpsertEntry(habitID, day string, status models.Status, userID string) error
	DeleteEntry(habitID, day string) error

	// Utils
	GetConfigPath() string
}
