package models

import (
	"time"

	"github.com/evanfuller/habitgrid/internal/constants"
)

// Status is the recorded state of a habit on a single day. Absence of an
// entry means the day is untracked; there is no explicit "empty" status.
type Status string

const (
	StatusDone    Status = "done"
	StatusPlanned Status = "planned"
)

// Frequency determines the period a habit's target applies to
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Colors is the fixed palette a habit color must come from
var Colors = []string{"blue", "green", "purple", "amber", "rose", "cyan"}

// ValidColor reports whether c is part of the palette
func ValidColor(c string) bool {
	for _, color := range Colors {
		if color == c {
			return true
		}
	}
	return false
}

// Habit represents a recurring practice tracked per calendar day
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Frequency Frequency `json:"frequency"`
	Target    int       `json:"target"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	Entries   EntryMap  `json:"entries"`
}

// Clone returns a deep copy of the habit, including its entries
func (h Habit) Clone() Habit {
	c := h
	c.Entries = h.Entries.Clone()
	return c
}

// EffectiveTarget returns the habit's target, falling back to the default
// for legacy records that never had one set
func (h Habit) EffectiveTarget() int {
	if h.Target > 0 {
		return h.Target
	}
	return constants.DefaultTarget
}

// HabitDraft carries the user-supplied fields for a new habit
type HabitDraft struct {
	Name      string
	Color     string
	Target    int
	Frequency Frequency
	SortOrder int
}

// HabitChanges carries the mutable fields of a habit edit. Nil pointers
// leave the corresponding field untouched.
type HabitChanges struct {
	Name      *string
	Color     *string
	Target    *int
	Frequency *Frequency
}

// Entry is the flat (day, status) record shape used at the data-access
// boundary; the store folds these into per-habit EntryMaps.
type Entry struct {
	HabitID string `json:"habit_id"`
	Day     string `json:"day"` // YYYY-MM-DD
	Status  Status `json:"status"`
}
