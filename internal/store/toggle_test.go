package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/evanfuller/habitgrid/internal/models"
)

func TestNextStatus(t *testing.T) {
	const today = "2026-08-29"

	tests := []struct {
		name     string
		current  models.Status
		hasEntry bool
		day      string
		want     models.Status
		wantKeep bool
	}{
		// future: absent -> planned -> absent
		{
			name:     "future absent becomes planned",
			day:      "2026-09-01",
			want:     models.StatusPlanned,
			wantKeep: true,
		},
		{
			name:     "future planned clears",
			current:  models.StatusPlanned,
			hasEntry: true,
			day:      "2026-09-01",
			wantKeep: false,
		},
		{
			name:     "future done snaps back to planned",
			current:  models.StatusDone,
			hasEntry: true,
			day:      "2026-09-01",
			want:     models.StatusPlanned,
			wantKeep: true,
		},

		// today: absent -> planned -> done -> absent
		{
			name:     "today absent becomes planned",
			day:      today,
			want:     models.StatusPlanned,
			wantKeep: true,
		},
		{
			name:     "today planned becomes done",
			current:  models.StatusPlanned,
			hasEntry: true,
			day:      today,
			want:     models.StatusDone,
			wantKeep: true,
		},
		{
			name:     "today done clears",
			current:  models.StatusDone,
			hasEntry: true,
			day:      today,
			wantKeep: false,
		},

		// past: absent -> done -> absent
		{
			name:     "past absent becomes done",
			day:      "2026-08-01",
			want:     models.StatusDone,
			wantKeep: true,
		},
		{
			name:     "past done clears",
			current:  models.StatusDone,
			hasEntry: true,
			day:      "2026-08-01",
			wantKeep: false,
		},
		{
			name:     "past planned snaps to done",
			current:  models.StatusPlanned,
			hasEntry: true,
			day:      "2026-08-01",
			want:     models.StatusDone,
			wantKeep: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, keep := NextStatus(tt.current, tt.hasEntry, tt.day, today)
			if keep != tt.wantKeep {
				t.Fatalf("NextStatus() keep = %v, want %v", keep, tt.wantKeep)
			}
			if keep && got != tt.want {
				t.Errorf("NextStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestToggleEntryCyclesToday(t *testing.T) {
	f := seededProvider()
	s := newTestStore(f, false)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	const day = "2026-08-29" // the injected clock's today

	// absent -> planned
	status, keep, err := s.ToggleEntry("h2", day)
	if err != nil {
		t.Fatalf("ToggleEntry() error = %v", err)
	}
	if !keep || status != models.StatusPlanned {
		t.Fatalf("first toggle = (%s, %v), want (planned, true)", status, keep)
	}

	// planned -> done
	status, keep, err = s.ToggleEntry("h2", day)
	if err != nil {
		t.Fatalf("ToggleEntry() error = %v", err)
	}
	if !keep || status != models.StatusDone {
		t.Fatalf("second toggle = (%s, %v), want (done, true)", status, keep)
	}

	// done -> absent
	_, keep, err = s.ToggleEntry("h2", day)
	if err != nil {
		t.Fatalf("ToggleEntry() error = %v", err)
	}
	if keep {
		t.Fatalf("third toggle kept the entry, want cleared")
	}

	habit, _ := s.Habit("h2")
	if _, ok := habit.Entries.Get(day); ok {
		t.Errorf("entry still present after full cycle")
	}

	wantUpserts := []string{
		"h2/2026-08-29=planned",
		"h2/2026-08-29=done",
	}
	if !reflect.DeepEqual(f.upserts, wantUpserts) {
		t.Errorf("remote upserts = %v, want %v", f.upserts, wantUpserts)
	}
	if !reflect.DeepEqual(f.entryDeletes, []string{"h2/2026-08-29"}) {
		t.Errorf("remote deletes = %v, want [h2/2026-08-29]", f.entryDeletes)
	}
}

func TestToggleEntryPastDay(t *testing.T) {
	s := newTestStore(seededProvider(), false)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	status, keep, err := s.ToggleEntry("h2", "2026-08-15")
	if err != nil {
		t.Fatalf("ToggleEntry() error = %v", err)
	}
	if !keep || status != models.StatusDone {
		t.Errorf("past toggle = (%s, %v), want (done, true)", status, keep)
	}

	_, keep, err = s.ToggleEntry("h2", "2026-08-15")
	if err != nil {
		t.Fatalf("ToggleEntry() error = %v", err)
	}
	if keep {
		t.Errorf("second past toggle kept the entry, want cleared")
	}
}

func TestToggleEntryFutureDay(t *testing.T) {
	s := newTestStore(seededProvider(), false)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	status, keep, err := s.ToggleEntry("h2", "2026-09-10")
	if err != nil {
		t.Fatalf("ToggleEntry() error = %v", err)
	}
	if !keep || status != models.StatusPlanned {
		t.Errorf("future toggle = (%s, %v), want (planned, true)", status, keep)
	}
}

func TestToggleEntryRollsBackOnRemoteFailure(t *testing.T) {
	f := seededProvider()
	s := newTestStore(f, false)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	before := s.Habits()

	f.failUpsert = true
	_, _, err := s.ToggleEntry("h1", "2026-08-10")
	if err == nil {
		t.Fatal("ToggleEntry() expected error, got nil")
	}
	var dae *DataAccessError
	if !errors.As(err, &dae) {
		t.Errorf("error type = %T, want *DataAccessError", err)
	}

	after := s.Habits()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("cache not restored after failed toggle:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestToggleEntryRollsBackClear(t *testing.T) {
	f := seededProvider()
	s := newTestStore(f, false)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	before := s.Habits()

	// h1 already has a done entry on the 28th; toggling clears it, and the
	// failed remote delete must bring it back.
	f.failDeleteEntry = true
	_, _, err := s.ToggleEntry("h1", "2026-08-28")
	if err == nil {
		t.Fatal("ToggleEntry() expected error, got nil")
	}

	if !reflect.DeepEqual(before, s.Habits()) {
		t.Errorf("cleared entry not restored after failed remote delete")
	}
	habit, _ := s.Habit("h1")
	if st, ok := habit.Entries.Get("2026-08-28"); !ok || st != models.StatusDone {
		t.Errorf("entry = (%s, %v), want (done, true)", st, ok)
	}
}

func TestToggleEntryErrors(t *testing.T) {
	s := newTestStore(seededProvider(), false)
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	t.Run("unknown habit", func(t *testing.T) {
		_, _, err := s.ToggleEntry("nope", "2026-08-29")
		var nfe *NotFoundError
		if !errors.As(err, &nfe) {
			t.Errorf("error = %v, want *NotFoundError", err)
		}
	})

	t.Run("malformed day", func(t *testing.T) {
		_, _, err := s.ToggleEntry("h1", "Aug 29")
		if err == nil {
			t.Error("expected error for malformed day")
		}
	})
}
