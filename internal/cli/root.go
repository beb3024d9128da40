package cli

import (
	"fmt"
	"time"

	"github.com/evanfuller/habitgrid/internal/constants"
	"github.com/evanfuller/habitgrid/internal/identity"
	"github.com/evanfuller/habitgrid/internal/models"
	"github.com/evanfuller/habitgrid/internal/storage"
	"github.com/evanfuller/habitgrid/internal/store"
)

type Context struct {
	Store    *store.Store
	Provider storage.Provider
	Identity *identity.Manager
}

// ParseDay validates a YYYY-MM-DD argument, defaulting to today when empty
func ParseDay(s string) (string, error) {
	if s == "" {
		return time.Now().Format(constants.DateFormat), nil
	}
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", s)
	}
	return s, nil
}

// ParseMonth turns a YYYY-MM argument into the first day of that month,
// defaulting to the current month when empty
func ParseMonth(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(constants.MonthFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month format: %s (expected YYYY-MM)", s)
	}
	return t, nil
}

// StartOfWeek returns the Monday on or before the given day
func StartOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, -offset)
}

// StatusGlyph is the single-character cell rendering of a day's status
func StatusGlyph(st models.Status, hasEntry bool) string {
	if !hasEntry {
		return "·"
	}
	if st == models.StatusDone {
		return "✓"
	}
	return "○"
}
