// Package store holds the client-side habit cache and the mutation protocol
// layered on the injected data-access provider. The cache is mutated only
// through Store methods; readers get deep-copied snapshots and re-derive
// views with the stats package instead of observing the cache directly.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/evanfuller/habitgrid/internal/constants"
	"github.com/evanfuller/habitgrid/internal/identity"
	"github.com/evanfuller/habitgrid/internal/logger"
	"github.com/evanfuller/habitgrid/internal/models"
	"github.com/evanfuller/habitgrid/internal/storage"
	"github.com/evanfuller/habitgrid/internal/validation"
)

// Store is the authoritative client-side list of habits with their entries
type Store struct {
	mu       sync.RWMutex
	provider storage.Provider
	identity identity.Provider
	habits   []models.Habit
	loaded   bool

	// now is swappable for tests; toggle cycles are date-relative
	now func() time.Time
}

// New creates a store over the given provider and identity source
func New(provider storage.Provider, id identity.Provider) *Store {
	return &Store{
		provider: provider,
		identity: id,
		now:      time.Now,
	}
}

// Load fetches all habits and entries for the current user and replaces the
// cache. On failure the cache is left untouched and the caller decides the
// fallback.
func (s *Store) Load() error {
	habits, err := s.provider.FetchHabits(s.identity.UserID())
	if err != nil {
		return &DataAccessError{Op: "fetch habits", Err: err}
	}

	for i := range habits {
		if habits[i].Entries == nil {
			habits[i].Entries = models.EntryMap{}
		}
	}
	sortHabits(habits)

	s.mu.Lock()
	s.habits = habits
	s.loaded = true
	s.mu.Unlock()

	logger.Debug("habit cache loaded", "habits", len(habits))
	return nil
}

// Habits returns a deep-copied snapshot of the cache in display order
func (s *Store) Habits() []models.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneHabits(s.habits)
}

// Habit returns a deep copy of a single habit by id
func (s *Store) Habit(id string) (models.Habit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.habits {
		if s.habits[i].ID == id {
			return s.habits[i].Clone(), true
		}
	}
	return models.Habit{}, false
}

// HabitByName returns a deep copy of a single habit by name
func (s *Store) HabitByName(name string) (models.Habit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.habits {
		if s.habits[i].Name == name {
			return s.habits[i].Clone(), true
		}
	}
	return models.Habit{}, false
}

// AddHabit validates the draft, performs the remote create, and on success
// appends the stored record with an empty entry map. Not optimistic: the
// cache only changes after confirmed success.
func (s *Store) AddHabit(draft models.HabitDraft) (models.Habit, error) {
	s.mu.RLock()
	count := len(s.habits)
	s.mu.RUnlock()

	if draft.Target == 0 {
		draft.Target = constants.DefaultTarget
	}
	if err := validation.ValidateDraft(draft, count, s.identity.Premium()); err != nil {
		return models.Habit{}, err
	}

	draft.Frequency = normalizeFrequency(draft.Frequency)
	draft.SortOrder = count

	habit, err := s.provider.CreateHabit(s.identity.UserID(), draft)
	if err != nil {
		return models.Habit{}, &DataAccessError{Op: "create habit", Err: err}
	}
	if habit.Entries == nil {
		habit.Entries = models.EntryMap{}
	}

	s.mu.Lock()
	s.habits = append(s.habits, habit)
	s.mu.Unlock()

	logger.Info("habit added", "id", habit.ID, "name", habit.Name)
	return habit.Clone(), nil
}

// UpdateHabit validates the changes, performs the remote update, and on
// success merges the changed fields into the cached habit
func (s *Store) UpdateHabit(id string, changes models.HabitChanges) error {
	if _, ok := s.Habit(id); !ok {
		return &NotFoundError{HabitID: id}
	}
	if err := validation.ValidateChanges(changes); err != nil {
		return err
	}

	freq := normalizeFrequency("")
	changes.Frequency = &freq

	updated, err := s.provider.UpdateHabit(id, changes)
	if err != nil {
		return &DataAccessError{Op: "update habit", Err: err}
	}

	s.mu.Lock()
	for i := range s.habits {
		if s.habits[i].ID == id {
			entries := s.habits[i].Entries
			sortOrder := s.habits[i].SortOrder
			createdAt := s.habits[i].CreatedAt
			s.habits[i] = updated
			s.habits[i].Entries = entries
			s.habits[i].SortOrder = sortOrder
			s.habits[i].CreatedAt = createdAt
			break
		}
	}
	s.mu.Unlock()

	logger.Info("habit updated", "id", id)
	return nil
}

// DeleteHabit performs the remote delete and on success drops the habit and
// its entries from the cache. The provider cascades entry deletion.
func (s *Store) DeleteHabit(id string) error {
	if _, ok := s.Habit(id); !ok {
		return &NotFoundError{HabitID: id}
	}

	if err := s.provider.DeleteHabit(id); err != nil {
		return &DataAccessError{Op: "delete habit", Err: err}
	}

	s.mu.Lock()
	for i := range s.habits {
		if s.habits[i].ID == id {
			s.habits = append(s.habits[:i], s.habits[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	logger.Info("habit deleted", "id", id)
	return nil
}

// sortHabits orders by sort order, then creation time, matching the backend
// query order
func sortHabits(habits []models.Habit) {
	sort.SliceStable(habits, func(i, j int) bool {
		if habits[i].SortOrder != habits[j].SortOrder {
			return habits[i].SortOrder < habits[j].SortOrder
		}
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})
}

func cloneHabits(habits []models.Habit) []models.Habit {
	out := make([]models.Habit, len(habits))
	for i := range habits {
		out[i] = habits[i].Clone()
	}
	return out
}
