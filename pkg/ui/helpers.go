package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/Devansh-sys/todo-list-cts/pkg/session"
	"github.com/Devansh-sys/todo-list-cts/pkg/task"
)

// refreshRows rebuilds the table from the session: the selected day's
// tasks grouped under one header row per section, honoring collapse state
// and each section's filter. rowTasks/rowSections are rebuilt in lockstep
// so every cursor position maps back to a task id and section.
func (m *Model) refreshRows() {
	dateKey := m.sess.SelectedDateKey()
	rows := []table.Row{}
	m.rowTasks = m.rowTasks[:0]
	m.rowSections = m.rowSections[:0]

	for _, sec := range task.Sections {
		visible := m.sess.Visible(dateKey, sec)

		marker := "▾"
		if m.collapsed[sec] {
			marker = "▸"
		}
		header := fmt.Sprintf("%s %s (%d)%s", marker, sec, len(visible), filterBadge(m.sess.GetFilter(sec)))
		rows = append(rows, table.Row{"", header, "", "", ""})
		m.rowTasks = append(m.rowTasks, -1)
		m.rowSections = append(m.rowSections, sec)

		if m.collapsed[sec] {
			continue
		}

		doneStyle := lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color(m.styles.DoneColor))

		for _, t := range visible {
			check := "[ ]"
			title := t.Title
			if t.Section == task.SectionDone {
				check = "[x]"
				title = doneStyle.Render(title)
			}
			rows = append(rows, table.Row{
				check,
				title,
				task.FormatWindow(t.StartTime, t.EndTime),
				task.TagLabel(t.Tag),
				m.renderPriority(t.Priority),
			})
			m.rowTasks = append(m.rowTasks, t.ID)
			m.rowSections = append(m.rowSections, sec)
		}
	}

	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

// renderPriority colors the priority label by its class
func (m *Model) renderPriority(prio string) string {
	label := task.PriorityLabel(prio)
	switch task.ClassifyPriority(prio) {
	case task.PriorityHigh:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.HighPrioColor)).Render(label)
	case task.PriorityLow:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.LowPrioColor)).Render(label)
	default:
		return label
	}
}

// filterBadge summarizes a section's active filter for its header row
func filterBadge(f session.Filter) string {
	if f.Tag == session.FilterAll && f.Priority == session.FilterAll {
		return ""
	}
	parts := []string{}
	if f.Tag != session.FilterAll {
		parts = append(parts, "tag:"+f.Tag)
	}
	if f.Priority != session.FilterAll {
		parts = append(parts, "prio:"+f.Priority)
	}
	return "  [" + strings.Join(parts, " ") + "]"
}

// selectedTaskID returns the task id under the cursor, -1 on header rows
func (m *Model) selectedTaskID() int {
	cur := m.table.Cursor()
	if cur < 0 || cur >= len(m.rowTasks) {
		return -1
	}
	return m.rowTasks[cur]
}

// selectedSection returns the section the cursor row belongs to
func (m *Model) selectedSection() task.Section {
	cur := m.table.Cursor()
	if cur < 0 || cur >= len(m.rowSections) {
		return task.SectionToDo
	}
	return m.rowSections[cur]
}

// focusNextInput cycles forward through the form inputs
func (m *Model) focusNextInput() {
	inputs := m.inputs()
	m.activeInput = (m.activeInput + 1) % len(inputs)
	for i, in := range inputs {
		if i == m.activeInput {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// focusPreviousInput cycles backward through the form inputs
func (m *Model) focusPreviousInput() {
	inputs := m.inputs()
	m.activeInput = (m.activeInput - 1 + len(inputs)) % len(inputs)
	for i, in := range inputs {
		if i == m.activeInput {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// parseSection maps lenient status text to a workflow state
func parseSection(value string) task.Section {
	v := strings.ToLower(strings.TrimSpace(value))
	switch {
	case strings.HasPrefix(v, "in"):
		return task.SectionInProgress
	case strings.HasPrefix(v, "done"):
		return task.SectionDone
	default:
		return task.SectionToDo
	}
}

// submitForm processes the form data based on the current mode
func (m *Model) submitForm() {
	date := strings.TrimSpace(m.dateInput.Value())
	if date != "" {
		if _, err := time.Parse(session.DateKeyLayout, date); err != nil {
			m.err = fmt.Errorf("invalid date format: use YYYY-MM-DD")
			return
		}
	}

	fields := session.Fields{
		Title:     m.titleInput.Value(),
		Tag:       strings.TrimSpace(m.tagInput.Value()),
		Priority:  strings.TrimSpace(m.prioInput.Value()),
		Section:   parseSection(m.statusInput.Value()),
		StartTime: strings.TrimSpace(m.startInput.Value()),
		EndTime:   strings.TrimSpace(m.endInput.Value()),
		Date:      date,
	}

	var err error
	switch m.mode {
	case AddMode:
		_, err = m.sess.Create(fields)
	case EditMode:
		_, err = m.sess.Update(m.editingID, fields)
	}
	if err != nil {
		m.err = err
		return
	}

	m.mode = NormalMode
	m.resetInputs()
	m.editingID = -1
	m.err = nil
	m.calcResult = ""
	m.refreshRows()
}

// formatMinutes renders a minute total as "2h 15m"
func formatMinutes(total int) string {
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}
