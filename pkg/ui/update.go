package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Devansh-sys/todo-list-cts/pkg/config"
	"github.com/Devansh-sys/todo-list-cts/pkg/session"
	"github.com/Devansh-sys/todo-list-cts/pkg/task"
	"github.com/Devansh-sys/todo-list-cts/pkg/utils"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case NormalMode:
			switch {
			case key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = HelpViewMode

			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit

			case key.Matches(msg, m.keyMap.ToggleDone):
				if id := m.selectedTaskID(); id >= 0 {
					t, ok := m.sess.Find(id)
					if ok {
						// Checking completes with revert memory, unchecking
						// restores the remembered section
						checked := t.Section != task.SectionDone
						if err := m.sess.ToggleDone(id, checked); err != nil {
							m.err = err
						} else {
							m.err = nil
							m.refreshRows()
						}
					}
				}

			case key.Matches(msg, m.keyMap.MoveInProgress):
				if id := m.selectedTaskID(); id >= 0 {
					if err := m.sess.Advance(id); err != nil {
						m.err = err
					} else {
						m.err = nil
						m.refreshRows()
					}
				}

			case key.Matches(msg, m.keyMap.AddTask):
				m.mode = AddMode
				m.editingID = -1
				m.err = nil
				m.resetInputs()

			case key.Matches(msg, m.keyMap.EditTask):
				if id := m.selectedTaskID(); id >= 0 {
					t, ok := m.sess.Find(id)
					if !ok {
						break
					}
					if t.Locked() {
						m.err = task.ErrEditLocked
						break
					}
					m.mode = EditMode
					m.editingID = id
					m.err = nil
					m.resetInputs()
					m.titleInput.SetValue(t.Title)
					m.tagInput.SetValue(t.Tag)
					m.prioInput.SetValue(t.Priority)
					m.statusInput.SetValue(string(t.Section))
					m.dateInput.SetValue(t.Date)
					m.startInput.SetValue(t.StartTime)
					m.endInput.SetValue(t.EndTime)
				}

			case key.Matches(msg, m.keyMap.DeleteTask):
				if id := m.selectedTaskID(); id >= 0 {
					m.mode = DeleteConfirmMode
					m.editingID = id
				}

			case key.Matches(msg, m.keyMap.PrevDay):
				m.sess.Shift(-1)
				m.calcResult = ""
				m.refreshRows()

			case key.Matches(msg, m.keyMap.NextDay):
				m.sess.Shift(1)
				m.calcResult = ""
				m.refreshRows()

			case key.Matches(msg, m.keyMap.JumpToToday):
				m.sess.JumpToToday()
				m.calcResult = ""
				m.refreshRows()

			case key.Matches(msg, m.keyMap.CollapseSection):
				sec := m.selectedSection()
				m.collapsed[sec] = !m.collapsed[sec]
				m.refreshRows()

			case key.Matches(msg, m.keyMap.FilterSection):
				m.mode = FilterMode
				m.filterSection = m.selectedSection()

			case key.Matches(msg, m.keyMap.CalcTime):
				total := m.sess.PlannedMinutes(m.sess.SelectedDateKey())
				if total > 0 {
					m.calcResult = "Total time: " + formatMinutes(total)
				} else {
					m.calcResult = "No valid timelines"
				}

			case key.Matches(msg, m.keyMap.ToggleTheme):
				if m.theme == "dark" {
					m.theme = "light"
				} else {
					m.theme = "dark"
				}
				m.styles = config.StylesForTheme(m.theme)
				m.applyTableStyles()
				config.SaveTheme(m.theme)
			}

		case AddMode, EditMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.resetInputs()
				m.editingID = -1
				m.err = nil

			case "tab":
				m.focusNextInput()

			case "shift+tab":
				m.focusPreviousInput()

			case "enter":
				if m.activeInput == len(m.inputs())-1 {
					m.submitForm()
				} else {
					m.focusNextInput()
				}
			}

			// Route the key to the active input
			inputs := m.inputs()
			if m.activeInput < len(inputs) {
				var c tea.Cmd
				*inputs[m.activeInput], c = inputs[m.activeInput].Update(msg)
				cmds = append(cmds, c)
			}

		case FilterMode:
			switch msg.String() {
			case "t":
				f := m.sess.GetFilter(m.filterSection)
				m.sess.SetTagFilter(m.filterSection, nextTagFilter(f.Tag))
				m.refreshRows()

			case "p":
				f := m.sess.GetFilter(m.filterSection)
				m.sess.SetPriorityFilter(m.filterSection, nextPriorityFilter(f.Priority))
				m.refreshRows()

			case "c", "x":
				m.sess.ClearFilter(m.filterSection)
				m.refreshRows()

			case "esc", "enter":
				m.mode = NormalMode
			}

		case DeleteConfirmMode:
			switch msg.String() {
			case "y", "Y":
				if m.editingID >= 0 {
					utils.Log("Deleting task ID: %d", m.editingID)
					if !m.sess.Delete(m.editingID) {
						utils.Log("Task %d already gone", m.editingID)
					}
					m.refreshRows()
				}
				m.mode = NormalMode
				m.editingID = -1

			case "n", "N", "esc":
				m.mode = NormalMode
				m.editingID = -1
			}

		case HelpViewMode:
			switch msg.String() {
			case "esc", "ctrl+b":
				m.mode = NormalMode
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		m.table.SetHeight(msg.Height - 10)
	}

	// Only update table in normal mode
	if m.mode == NormalMode {
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// nextTagFilter cycles all -> work -> health -> other -> all
func nextTagFilter(cur string) string {
	switch cur {
	case session.FilterAll:
		return string(task.TagWork)
	case string(task.TagWork):
		return string(task.TagHealth)
	case string(task.TagHealth):
		return string(task.TagOther)
	default:
		return session.FilterAll
	}
}

// nextPriorityFilter cycles all -> high -> mid -> low -> all
func nextPriorityFilter(cur string) string {
	switch cur {
	case session.FilterAll:
		return string(task.PriorityHigh)
	case string(task.PriorityHigh):
		return string(task.PriorityMid)
	case string(task.PriorityMid):
		return string(task.PriorityLow)
	default:
		return session.FilterAll
	}
}
