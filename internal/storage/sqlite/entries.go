package sqlite

import (
	"time"

	"github.com/evanfuller/habitgrid/internal/models"
)

func (s *Store) UpsertEntry(habitID, day string, status models.Status, userID string) error {
	now := time.Now().Format(time.RFC3339)
	_, err := s.db.Exec(`
		INSERT INTO habit_entries (habit_id, user_id, day, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(habit_id, day) DO UPDATE SET
			status = excluded.status,
			updated_at = excluded.updated_at`,
		habitID, userID, day, string(status), now, now)
	return err
}

func (s *Store) DeleteEntry(habitID, day string) error {
	// Deleting an absent row is not an error; the caller's intent is "this
	// day has no entry" either way.
	_, err := s.db.Exec(
		"DELETE FROM habit_entries WHERE habit_id = ? AND day = ?", habitID, day)
	return err
}
