// Package validation checks habit input before any remote call is made.
// Validation failures are surfaced synchronously; they never reach storage.
package validation

import (
	"fmt"
	"strings"

	"github.com/evanfuller/habitgrid/internal/constants"
	"github.com/evanfuller/habitgrid/internal/models"
)

// Reason classifies a validation failure
type Reason string

const (
	ReasonEmptyName    Reason = "empty_name"
	ReasonBadTarget    Reason = "bad_target"
	ReasonUnknownColor Reason = "unknown_color"
	ReasonHabitLimit   Reason = "habit_limit"
)

// Error is a rejected-input error, raised before any remote call
type Error struct {
	Reason  Reason
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(reason Reason, format string, args ...interface{}) *Error {
	return &Error{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// ValidateDraft checks a new-habit draft against the data model invariants
// and the free-tier ceiling. existingCount is the number of habits the user
// already has; premium accounts are exempt from the ceiling.
func ValidateDraft(draft models.HabitDraft, existingCount int, premium bool) error {
	if strings.TrimSpace(draft.Name) == "" {
		return newError(ReasonEmptyName, "habit name must not be empty")
	}
	if draft.Target <= 0 {
		return newError(ReasonBadTarget, "target must be a positive number of days, got %d", draft.Target)
	}
	if draft.Color != "" && !models.ValidColor(draft.Color) {
		return newError(ReasonUnknownColor, "unknown color %q (choose one of %s)", draft.Color, strings.Join(models.Colors, ", "))
	}
	if !premium && existingCount >= constants.FreeHabitLimit {
		return newError(ReasonHabitLimit, "free accounts are limited to %d habits; upgrade to add more", constants.FreeHabitLimit)
	}
	return nil
}

// ValidateChanges checks a habit edit. Only fields present in the change set
// are validated.
func ValidateChanges(changes models.HabitChanges) error {
	if changes.Name != nil && strings.TrimSpace(*changes.Name) == "" {
		return newError(ReasonEmptyName, "habit name must not be empty")
	}
	if changes.Target != nil && *changes.Target <= 0 {
		return newError(ReasonBadTarget, "target must be a positive number of days, got %d", *changes.Target)
	}
	if changes.Color != nil && !models.ValidColor(*changes.Color) {
		return newError(ReasonUnknownColor, "unknown color %q (choose one of %s)", *changes.Color, strings.Join(models.Colors, ", "))
	}
	return nil
}
