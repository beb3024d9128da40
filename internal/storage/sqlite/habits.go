package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/evanfuller/habitgrid/internal/models"
)

func (s *Store) FetchHabits(userID string) ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT id, name, color, frequency, target, sort_order, created_at
		FROM habits WHERE user_id = ?
		ORDER BY sort_order, created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	index := map[string]int{}
	for rows.Next() {
		var h models.Habit
		var createdAt string

		if err := rows.Scan(&h.ID, &h.Name, &h.Color, &h.Frequency, &h.Target, &h.SortOrder, &createdAt); err != nil {
			return nil, err
		}
		h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for habit %s: %w", h.ID, err)
		}
		h.Entries = models.EntryMap{}

		index[h.ID] = len(habits)
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entryRows, err := s.db.Query(`
		SELECT habit_id, day, status FROM habit_entries WHERE user_id = ?`, userID)
	if err != nil {
		return nil, err
	}
	defer entryRows.Close()

	for entryRows.Next() {
		var e models.Entry
		if err := entryRows.Scan(&e.HabitID, &e.Day, &e.Status); err != nil {
			return nil, err
		}
		if i, ok := index[e.HabitID]; ok {
			habits[i].Entries.Set(e.Day, e.Status)
		}
	}
	if err := entryRows.Err(); err != nil {
		return nil, err
	}

	return habits, nil
}

func (s *Store) CreateHabit(userID string, draft models.HabitDraft) (models.Habit, error) {
	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      draft.Name,
		Color:     draft.Color,
		Frequency: draft.Frequency,
		Target:    draft.Target,
		SortOrder: draft.SortOrder,
		CreatedAt: time.Now(),
		Entries:   models.EntryMap{},
	}
	if habit.Color == "" {
		habit.Color = models.Colors[0]
	}

	_, err := s.db.Exec(`
		INSERT INTO habits (id, user_id, name, color, frequency, target, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		habit.ID, userID, habit.Name, habit.Color, string(habit.Frequency),
		habit.Target, habit.SortOrder, habit.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return models.Habit{}, err
	}

	return habit, nil
}

func (s *Store) UpdateHabit(id string, changes models.HabitChanges) (models.Habit, error) {
	var sets []string
	var args []interface{}

	if changes.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *changes.Name)
	}
	if changes.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *changes.Color)
	}
	if changes.Target != nil {
		sets = append(sets, "target = ?")
		args = append(args, *changes.Target)
	}
	if changes.Frequency != nil {
		sets = append(sets, "frequency = ?")
		args = append(args, string(*changes.Frequency))
	}

	if len(sets) > 0 {
		args = append(args, id)
		result, err := s.db.Exec(
			"UPDATE habits SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return models.Habit{}, err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return models.Habit{}, err
		}
		if rows == 0 {
			return models.Habit{}, fmt.Errorf("habit not found")
		}
	}

	return s.getHabit(id)
}

func (s *Store) DeleteHabit(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Entries cascade with their habit
	if _, err := tx.Exec("DELETE FROM habit_entries WHERE habit_id = ?", id); err != nil {
		return err
	}

	result, err := tx.Exec("DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("habit not found")
	}

	return tx.Commit()
}

func (s *Store) getHabit(id string) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, color, frequency, target, sort_order, created_at
		FROM habits WHERE id = ?`, id)

	var h models.Habit
	var createdAt string
	if err := row.Scan(&h.ID, &h.Name, &h.Color, &h.Frequency, &h.Target, &h.SortOrder, &createdAt); err != nil {
		return models.Habit{}, err
	}

	var err error
	h.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	h.Entries = models.EntryMap{}

	return h, nil
}
