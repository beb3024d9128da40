package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/evanfuller/habitgrid/internal/models"
	"github.com/evanfuller/habitgrid/internal/store"
)

type SessionState int

const (
	StateGrid SessionState = iota
	StateAddHabit
	StateEditHabit
	StateConfirmDelete
)

// HabitFormModel backs the huh add/edit form
type HabitFormModel struct {
	Name   string
	Target string
	Color  string
}

type Model struct {
	store *store.Store
	state SessionState
	keys  KeyMap
	help  help.Model

	habits []models.Habit // snapshot, refreshed after every mutation
	month  time.Time      // first day of the displayed month
	row    int            // selected habit index
	day    int            // selected day of month, 1-based

	form          *huh.Form
	habitForm     *HabitFormModel
	editingID     string
	deletingID    string
	deletingName  string
	statusMessage string
	errMessage    string

	width    int
	height   int
	quitting bool
}

func New(s *store.Store) Model {
	now := time.Now()
	return Model{
		store:  s,
		state:  StateGrid,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		habits: s.Habits(),
		month:  time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC),
		day:    now.Day(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// newHabitForm builds the huh form for adding or editing a habit
func newHabitForm(fm *HabitFormModel) *huh.Form {
	colorOptions := make([]huh.Option[string], len(models.Colors))
	for i, c := range models.Colors {
		colorOptions[i] = huh.NewOption(c, c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&fm.Name),
			huh.NewInput().
				Title("Target days per week").
				Value(&fm.Target).
				Validate(func(s string) error {
					_, err := strconv.Atoi(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Color").
				Options(colorOptions...).
				Value(&fm.Color),
		),
	)
}

func (m *Model) daysInMonth() int {
	return m.month.AddDate(0, 1, -1).Day()
}

// selectedDay returns the YYYY-MM-DD key under the cursor
func (m *Model) selectedDay() string {
	return time.Date(m.month.Year(), m.month.Month(), m.day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

func (m *Model) refresh() {
	m.habits = m.store.Habits()
	if m.row >= len(m.habits) {
		m.row = len(m.habits) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}
