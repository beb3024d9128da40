package store

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/evanfuller/habitgrid/internal/identity"
	"github.com/evanfuller/habitgrid/internal/models"
	"github.com/evanfuller/habitgrid/internal/validation"
)

// fakeProvider is an in-memory data-access provider with failure injection
type fakeProvider struct {
	habits []models.Habit

	failFetch       bool
	failCreate      bool
	failUpdate      bool
	failDelete      bool
	failUpsert      bool
	failDeleteEntry bool

	upserts      []string // "habitID/day=status"
	entryDeletes []string // "habitID/day"
	lastChanges  models.HabitChanges
	nextID       int
}

func (f *fakeProvider) Init() error  { return nil }
func (f *fakeProvider) Load() error  { return nil }
func (f *fakeProvider) Close() error { return nil }

func (f *fakeProvider) GetConfigPath() string { return "fake" }

func (f *fakeProvider) FetchHabits(userID string) ([]models.Habit, error) {
	if f.failFetch {
		return nil, errors.New("network down")
	}
	out := make([]models.Habit, len(f.habits))
	for i := range f.habits {
		out[i] = f.habits[i].Clone()
	}
	return out, nil
}

func (f *fakeProvider) CreateHabit(userID string, draft models.HabitDraft) (models.Habit, error) {
	if f.failCreate {
		return models.Habit{}, errors.New("insert rejected")
	}
	f.nextID++
	habit := models.Habit{
		ID:        fmt.Sprintf("habit-%d", f.nextID),
		Name:      draft.Name,
		Color:     draft.Color,
		Frequency: draft.Frequency,
		Target:    draft.Target,
		SortOrder: draft.SortOrder,
		CreatedAt: time.Now(),
		Entries:   models.EntryMap{},
	}
	f.habits = append(f.habits, habit.Clone())
	return habit, nil
}

func (f *fakeProvider) UpdateHabit(id string, changes models.HabitChanges) (models.Habit, error) {
	if f.failUpdate {
		return models.Habit{}, errors.New("update rejected")
	}
	f.lastChanges = changes
	for i := range f.habits {
		if f.habits[i].ID == id {
			if changes.Name != nil {
				f.habits[i].Name = *changes.Name
			}
			if changes.Color != nil {
				f.habits[i].Color = *changes.Color
			}
			if changes.Target != nil {
				f.habits[i].Target = *changes.Target
			}
			if changes.Frequency != nil {
				f.habits[i].Frequency = *changes.Frequency
			}
			return f.habits[i].Clone(), nil
		}
	}
	return models.Habit{}, errors.New("habit not found")
}

func (f *fakeProvider) DeleteHabit(id string) error {
	if f.failDelete {
		return errors.New("delete rejected")
	}
	for i := range f.habits {
		if f.habits[i].ID == id {
			f.habits = append(f.habits[:i], f.habits[i+1:]...)
			return nil
		}
	}
	return errors.New("habit not found")
}

func (f *fakeProvider) UpsertEntry(habitID, day string, status models.Status, userID string) error {
	if f.failUpsert {
		return errors.New("upsert rejected")
	}
	f.upserts = append(f.upserts, fmt.Sprintf("%s/%s=%s", habitID, day, status))
	return nil
}

func (f *fakeProvider) DeleteEntry(habitID, day string) error {
	if f.failDeleteEntry {
		return errors.New("delete rejected")
	}
	f.entryDeletes = append(f.entryDeletes, fmt.Sprintf("%s/%s", habitID, day))
	return nil
}

func seededProvider() *fakeProvider {
	return &fakeProvider{
		habits: []models.Habit{
			{
				ID:        "h1",
				Name:      "run",
				Color:     "green",
				Frequency: models.FrequencyWeekly,
				Target:    3,
				SortOrder: 0,
				CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				Entries: models.EntryMap{
					"2026-08-27": models.StatusDone,
					"2026-08-28": models.StatusDone,
				},
			},
			{
				ID:        "h2",
				Name:      "read",
				Color:     "blue",
				Frequency: models.FrequencyWeekly,
				Target:    5,
				SortOrder: 1,
				CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
				Entries:   models.EntryMap{},
			},
		},
	}
}

func newTestStore(f *fakeProvider, premium bool) *Store {
	s := New(f, identity.Static{ID: "user-1", IsPremium: premium})
	s.now = func() time.Time {
		return time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func TestLoad(t *testing.T) {
	f := seededProvider()
	s := newTestStore(f, false)

	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	habits := s.Habits()
	if len(habits) != 2 {
		t.Fatalf("Habits() len = %d, want 2", len(habits))
	}
	if habits[0].ID != "h1" || habits[1].ID != "h2" {
		t.Errorf("habits out of order: %s, %s", habits[0].ID, habits[1].ID)
	}
	if st, ok := habits[0].Entries.Get("2026-08-27"); !ok || st != models.StatusDone {
		t.Errorf("entry map not populated: %v, %v", st, ok)
	}
}

func TestLoadFailureLeavesCache(t *testing.T) {
	f := seededProvider()
	s := newTestStore(f, false)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	f.failFetch = true
	err := s.Load()
	if err == nil {
		t.Fatal("Load() expected error, got nil")
	}
	var dae *DataAccessError
	if !errors.As(err, &dae) {
		t.Errorf("Load() error type = %T, want *DataAccessError", err)
	}
	if len(s.Habits()) != 2 {
		t.Errorf("failed Load() mutated the cache")
	}
}

func TestHabitsReturnsSnapshot(t *testing.T) {
	s := newTestStore(seededProvider(), false)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	snapshot := s.Habits()
	snapshot[0].Name = "mutated"
	snapshot[0].Entries.Set("2026-08-01", models.StatusDone)

	fresh := s.Habits()
	if fresh[0].Name != "run" {
		t.Errorf("snapshot mutation leaked into cache")
	}
	if _, ok := fresh[0].Entries.Get("2026-08-01"); ok {
		t.Errorf("snapshot entry mutation leaked into cache")
	}
}

func TestAddHabit(t *testing.T) {
	tests := []struct {
		name     string
		draft    models.HabitDraft
		premium  bool
		seed     int // habits already present
		failure  bool
		wantErr  bool
		wantType string // "validation", "dataaccess"
	}{
		{
			name:  "valid draft",
			draft: models.HabitDraft{Name: "stretch", Target: 4, Color: "cyan"},
		},
		{
			name:     "empty name",
			draft:    models.HabitDraft{Name: "   ", Target: 4},
			wantErr:  true,
			wantType: "validation",
		},
		{
			name:     "negative target",
			draft:    models.HabitDraft{Name: "stretch", Target: -1},
			wantErr:  true,
			wantType: "validation",
		},
		{
			name:     "unknown color",
			draft:    models.HabitDraft{Name: "stretch", Target: 4, Color: "chartreuse"},
			wantErr:  true,
			wantType: "validation",
		},
		{
			name:     "free tier ceiling",
			draft:    models.HabitDraft{Name: "stretch", Target: 4},
			seed:     5,
			wantErr:  true,
			wantType: "validation",
		},
		{
			name:    "premium bypasses ceiling",
			draft:   models.HabitDraft{Name: "stretch", Target: 4},
			seed:    5,
			premium: true,
		},
		{
			name:     "remote failure leaves cache",
			draft:    models.HabitDraft{Name: "stretch", Target: 4},
			failure:  true,
			wantErr:  true,
			wantType: "dataaccess",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeProvider{}
			for i := 0; i < tt.seed; i++ {
				f.habits = append(f.habits, models.Habit{
					ID:      fmt.Sprintf("seed-%d", i),
					Name:    fmt.Sprintf("seed-%d", i),
					Target:  1,
					Entries: models.EntryMap{},
				})
			}
			f.failCreate = tt.failure

			s := newTestStore(f, tt.premium)
			if err := s.Load(); err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			before := len(s.Habits())

			habit, err := s.AddHabit(tt.draft)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddHabit() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				switch tt.wantType {
				case "validation":
					var ve *validation.Error
					if !errors.As(err, &ve) {
						t.Errorf("error type = %T, want *validation.Error", err)
					}
				case "dataaccess":
					var dae *DataAccessError
					if !errors.As(err, &dae) {
						t.Errorf("error type = %T, want *DataAccessError", err)
					}
				}
				if len(s.Habits()) != before {
					t.Errorf("failed AddHabit() mutated the cache")
				}
				return
			}

			if habit.ID == "" {
				t.Errorf("AddHabit() returned habit without id")
			}
			if habit.Frequency != models.FrequencyWeekly {
				t.Errorf("new habit frequency = %s, want weekly", habit.Frequency)
			}
			if len(s.Habits()) != before+1 {
				t.Errorf("AddHabit() did not append to cache")
			}
		})
	}
}

func TestAddHabitDefaultsTarget(t *testing.T) {
	s := newTestStore(&fakeProvider{}, false)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	habit, err := s.AddHabit(models.HabitDraft{Name: "journal"})
	if err != nil {
		t.Fatalf("AddHabit() error = %v", err)
	}
	if habit.Target != 20 {
		t.Errorf("Target = %d, want default 20", habit.Target)
	}
}

func TestUpdateHabitForcesWeekly(t *testing.T) {
	f := seededProvider()
	f.habits[0].Frequency = models.FrequencyMonthly

	s := newTestStore(f, false)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	newName := "sprint"
	monthly := models.FrequencyMonthly
	err := s.UpdateHabit("h1", models.HabitChanges{Name: &newName, Frequency: &monthly})
	if err != nil {
		t.Fatalf("UpdateHabit() error = %v", err)
	}

	if f.lastChanges.Frequency == nil || *f.lastChanges.Frequency != models.FrequencyWeekly {
		t.Errorf("remote update frequency = %v, want forced weekly", f.lastChanges.Frequency)
	}

	habit, _ := s.Habit("h1")
	if habit.Name != "sprint" {
		t.Errorf("Name = %q, want sprint", habit.Name)
	}
	if habit.Frequency != models.FrequencyWeekly {
		t.Errorf("legacy monthly habit not migrated to weekly, got %s", habit.Frequency)
	}
	if _, ok := habit.Entries.Get("2026-08-27"); !ok {
		t.Errorf("UpdateHabit() dropped existing entries")
	}
}

func TestUpdateHabitFailures(t *testing.T) {
	f := seededProvider()
	s := newTestStore(f, false)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	t.Run("unknown habit", func(t *testing.T) {
		name := "x"
		err := s.UpdateHabit("nope", models.HabitChanges{Name: &name})
		var nfe *NotFoundError
		if !errors.As(err, &nfe) {
			t.Errorf("error = %v, want *NotFoundError", err)
		}
	})

	t.Run("remote failure leaves cache", func(t *testing.T) {
		f.failUpdate = true
		defer func() { f.failUpdate = false }()

		name := "changed"
		err := s.UpdateHabit("h1", models.HabitChanges{Name: &name})
		var dae *DataAccessError
		if !errors.As(err, &dae) {
			t.Errorf("error = %v, want *DataAccessError", err)
		}
		habit, _ := s.Habit("h1")
		if habit.Name != "run" {
			t.Errorf("failed update mutated cache, name = %q", habit.Name)
		}
	})

	t.Run("empty name rejected before remote call", func(t *testing.T) {
		name := "  "
		err := s.UpdateHabit("h1", models.HabitChanges{Name: &name})
		var ve *validation.Error
		if !errors.As(err, &ve) {
			t.Errorf("error = %v, want *validation.Error", err)
		}
	})
}

func TestDeleteHabit(t *testing.T) {
	f := seededProvider()
	s := newTestStore(f, false)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if err := s.DeleteHabit("h1"); err != nil {
		t.Fatalf("DeleteHabit() error = %v", err)
	}
	if _, ok := s.Habit("h1"); ok {
		t.Errorf("habit still present after delete")
	}
	if len(s.Habits()) != 1 {
		t.Errorf("Habits() len = %d, want 1", len(s.Habits()))
	}

	t.Run("remote failure leaves cache", func(t *testing.T) {
		f.failDelete = true
		err := s.DeleteHabit("h2")
		var dae *DataAccessError
		if !errors.As(err, &dae) {
			t.Errorf("error = %v, want *DataAccessError", err)
		}
		if _, ok := s.Habit("h2"); !ok {
			t.Errorf("failed delete removed habit from cache")
		}
	})
}

func TestSortHabits(t *testing.T) {
	habits := []models.Habit{
		{ID: "b", SortOrder: 1, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "c", SortOrder: 1, CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "a", SortOrder: 0, CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	sortHabits(habits)

	var ids []string
	for _, h := range habits {
		ids = append(ids, h.ID)
	}
	if !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
		t.Errorf("sortHabits() order = %v, want [a b c]", ids)
	}
}
