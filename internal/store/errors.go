package store

import "fmt"

// DataAccessError wraps a failed remote call. For Load the cache is left
// untouched; for ToggleEntry the optimistic change has already been rolled
// back by the time the error is returned; for the habit CRUD operations no
// local mutation was applied in the first place.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when an operation names a habit that is not in
// the local cache
type NotFoundError struct {
	HabitID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("habit %q not found", e.HabitID)
}
