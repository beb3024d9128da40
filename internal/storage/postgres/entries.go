package postgres

import (
	"time"

	"github.com/evanfuller/habitgrid/internal/models"
)

func (s *Store) UpsertEntry(habitID, day string, status models.Status, userID string) error {
	now := time.Now()
	_, err := s.db.Exec(`
		INSERT INTO habit_entries (habit_id, user_id, day, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (habit_id, day) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`,
		habitID, userID, day, string(status), now)
	return err
}

func (s *Store) DeleteEntry(habitID, day string) error {
	_, err := s.db.Exec(
		"DELETE FROM habit_entries WHERE habit_id = $1 AND day = $2", habitID, day)
	return err
}
