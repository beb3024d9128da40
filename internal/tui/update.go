package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/evanfuller/habitgrid/internal/models"
)

// toggleDoneMsg reports the outcome of an optimistic toggle. On failure the
// store has already rolled the cache back; the grid just re-reads it.
type toggleDoneMsg struct {
	err error
}

type mutationDoneMsg struct {
	message string
	err     error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toggleDoneMsg:
		m.refresh()
		if msg.err != nil {
			m.errMessage = msg.err.Error()
		}
		return m, nil

	case mutationDoneMsg:
		m.refresh()
		if msg.err != nil {
			m.errMessage = msg.err.Error()
		} else {
			m.statusMessage = msg.message
		}
		return m, nil
	}

	switch m.state {
	case StateAddHabit, StateEditHabit:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateGrid(msg)
	}
}

func (m Model) updateGrid(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.errMessage = ""
	m.statusMessage = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(keyMsg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.row < len(m.habits)-1 {
			m.row++
		}

	case key.Matches(keyMsg, m.keys.Left):
		if m.day > 1 {
			m.day--
		}

	case key.Matches(keyMsg, m.keys.Right):
		if m.day < m.daysInMonth() {
			m.day++
		}

	case key.Matches(keyMsg, m.keys.PrevMonth):
		m.month = m.month.AddDate(0, -1, 0)
		m.clampDay()

	case key.Matches(keyMsg, m.keys.NextMonth):
		m.month = m.month.AddDate(0, 1, 0)
		m.clampDay()

	case key.Matches(keyMsg, m.keys.Today):
		now := time.Now()
		m.month = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		m.day = now.Day()

	case key.Matches(keyMsg, m.keys.Toggle):
		if m.row < len(m.habits) {
			habitID := m.habits[m.row].ID
			day := m.selectedDay()
			store := m.store
			// The store applies the change locally before the remote write
			// settles; toggleDoneMsg re-reads whichever state survived.
			return m, func() tea.Msg {
				_, _, err := store.ToggleEntry(habitID, day)
				return toggleDoneMsg{err: err}
			}
		}

	case key.Matches(keyMsg, m.keys.Add):
		m.habitForm = &HabitFormModel{Target: "3", Color: models.Colors[0]}
		m.form = newHabitForm(m.habitForm)
		m.editingID = ""
		m.state = StateAddHabit
		return m, m.form.Init()

	case key.Matches(keyMsg, m.keys.Edit):
		if m.row < len(m.habits) {
			h := m.habits[m.row]
			m.habitForm = &HabitFormModel{
				Name:   h.Name,
				Target: strconv.Itoa(h.EffectiveTarget()),
				Color:  h.Color,
			}
			m.form = newHabitForm(m.habitForm)
			m.editingID = h.ID
			m.state = StateEditHabit
			return m, m.form.Init()
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if m.row < len(m.habits) {
			m.deletingID = m.habits[m.row].ID
			m.deletingName = m.habits[m.row].Name
			m.state = StateConfirmDelete
		}
	}

	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = StateGrid
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		target, _ := strconv.Atoi(m.habitForm.Target)
		editingID := m.editingID
		fm := *m.habitForm
		store := m.store

		m.state = StateGrid
		if editingID == "" {
			return m, func() tea.Msg {
				_, err := store.AddHabit(models.HabitDraft{
					Name:   fm.Name,
					Target: target,
					Color:  fm.Color,
				})
				return mutationDoneMsg{message: "Added " + fm.Name, err: err}
			}
		}
		return m, func() tea.Msg {
			err := store.UpdateHabit(editingID, models.HabitChanges{
				Name:   &fm.Name,
				Target: &target,
				Color:  &fm.Color,
			})
			return mutationDoneMsg{message: "Updated " + fm.Name, err: err}
		}

	case huh.StateAborted:
		m.state = StateGrid
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		id, name := m.deletingID, m.deletingName
		store := m.store
		m.state = StateGrid
		return m, func() tea.Msg {
			err := store.DeleteHabit(id)
			return mutationDoneMsg{message: "Deleted " + name, err: err}
		}
	case "n", "N", "esc":
		m.state = StateGrid
	}

	return m, nil
}

func (m *Model) clampDay() {
	if max := m.daysInMonth(); m.day > max {
		m.day = max
	}
}
