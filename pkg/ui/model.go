package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Devansh-sys/todo-list-cts/pkg/config"
	"github.com/Devansh-sys/todo-list-cts/pkg/keymaps"
	"github.com/Devansh-sys/todo-list-cts/pkg/session"
	"github.com/Devansh-sys/todo-list-cts/pkg/task"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	EditMode
	DeleteConfirmMode
	FilterMode   // Mode for editing a section's filters
	HelpViewMode // Mode for displaying help
)

// Model represents the application state
type Model struct {
	table         table.Model
	sess          *session.Session
	width, height int
	err           error

	// Configuration
	cfg    config.Config
	styles config.Styles
	theme  string
	keyMap keymaps.KeyMap

	// View state. The table shows the selected day's tasks grouped under
	// section header rows; rowTasks/rowSections map each table row back to
	// the task id (-1 for headers) and its section.
	mode        InputMode
	rowTasks    []int
	rowSections []task.Section
	collapsed   map[task.Section]bool
	calcResult  string

	// Form state
	titleInput  textinput.Model
	tagInput    textinput.Model
	prioInput   textinput.Model
	statusInput textinput.Model
	dateInput   textinput.Model
	startInput  textinput.Model
	endInput    textinput.Model
	activeInput int

	// Edit/delete/filter targets
	editingID     int
	filterSection task.Section
}

// NewModel creates a new UI model over a loaded session
func NewModel(sess *session.Session, cfg config.Config) Model {
	columns := []table.Column{
		{Title: "", Width: 3},
		{Title: "Task", Width: 32},
		{Title: "Timeline", Width: 14},
		{Title: "Tag", Width: 8},
		{Title: "Priority", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(14),
	)

	titleInput := textinput.New()
	titleInput.Placeholder = "Title"
	titleInput.Focus()
	titleInput.Width = 40

	tagInput := textinput.New()
	tagInput.Placeholder = "Tag (work / health / other)"
	tagInput.Width = 40

	prioInput := textinput.New()
	prioInput.Placeholder = "Priority (high / mid / low)"
	prioInput.Width = 40

	statusInput := textinput.New()
	statusInput.Placeholder = "Status (To Do / In Progress / Done)"
	statusInput.Width = 40

	dateInput := textinput.New()
	dateInput.Placeholder = "Date (YYYY-MM-DD)"
	dateInput.Width = 40

	startInput := textinput.New()
	startInput.Placeholder = "Start time (HH:MM, optional)"
	startInput.Width = 40

	endInput := textinput.New()
	endInput.Placeholder = "End time (HH:MM, optional)"
	endInput.Width = 40

	m := Model{
		table:       t,
		sess:        sess,
		cfg:         cfg,
		styles:      config.StylesForTheme(cfg.Theme),
		theme:       cfg.Theme,
		keyMap:      keymaps.BuildKeyMap(cfg.KeyMap),
		mode:        NormalMode,
		collapsed:   make(map[task.Section]bool),
		titleInput:  titleInput,
		tagInput:    tagInput,
		prioInput:   prioInput,
		statusInput: statusInput,
		dateInput:   dateInput,
		startInput:  startInput,
		endInput:    endInput,
		editingID:   -1,
	}

	m.applyTableStyles()
	m.refreshRows()

	return m
}

// Init initializes the model (required by Bubble Tea Model interface)
func (m Model) Init() tea.Cmd {
	return nil
}

// applyTableStyles restyles the table from the current palette
func (m *Model) applyTableStyles() {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.styles.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.SelectedBgColor)).
		Bold(true)
	m.table.SetStyles(s)
}

// inputs returns the form inputs in focus order
func (m *Model) inputs() []*textinput.Model {
	return []*textinput.Model{
		&m.titleInput,
		&m.tagInput,
		&m.prioInput,
		&m.statusInput,
		&m.dateInput,
		&m.startInput,
		&m.endInput,
	}
}

// resetInputs clears the form and focuses the title field
func (m *Model) resetInputs() {
	for i, in := range m.inputs() {
		in.Reset()
		if i == 0 {
			in.Focus()
		} else {
			in.Blur()
		}
	}
	m.statusInput.SetValue(string(task.SectionToDo))
	m.dateInput.SetValue(m.sess.SelectedDateKey())
	m.activeInput = 0
}
