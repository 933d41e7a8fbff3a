package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Devansh-sys/todo-list-cts/pkg/session"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case NormalMode:
		sb.WriteString(m.renderTitleBar(" Daily Tasks "))
		sb.WriteString("\n")
		sb.WriteString(m.renderWeekStrip())
		sb.WriteString("\n")
		sb.WriteString(m.renderProgress())
		sb.WriteString("\n\n")
		sb.WriteString(m.table.View())
		sb.WriteString("\n")

		if m.calcResult != "" {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.AccentColor)).
				Render(m.calcResult))
			sb.WriteString("\n")
		}

		hint := "a: add • e: edit • d: delete • space: check • p: in progress • f: filter • ctrl+b: help"
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.MutedTextColor)).
			Render(hint))

	case AddMode:
		sb.WriteString(m.renderTitleBar(" Add New Task "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case EditMode:
		sb.WriteString(m.renderTitleBar(" Edit Task "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case FilterMode:
		sb.WriteString(m.renderTitleBar(fmt.Sprintf(" Filter: %s ", m.filterSection)))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderFilterPanel())

	case DeleteConfirmMode:
		sb.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
			Background(lipgloss.Color(m.styles.ErrorColor)).
			Padding(0, 1).
			Render(" Delete Task "))
		sb.WriteString("\n\n")
		if t, ok := m.sess.Find(m.editingID); ok {
			sb.WriteString("Are you sure you want to delete this task?\n\n")
			sb.WriteString(fmt.Sprintf("Title: %s\n", t.Title))
			sb.WriteString(fmt.Sprintf("Date:  %s\n", t.Date))
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case HelpViewMode:
		sb.WriteString(m.renderTitleBar(" Commands "))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderHelp())
	}

	// Error message if any
	if m.err != nil {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.ErrorColor)).
			Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return sb.String()
}

func (m Model) renderTitleBar(title string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.AccentColor)).
		Padding(0, 1).
		Render(title)
}

// renderWeekStrip draws the seven days around the selected one plus the
// full date of the selection.
func (m Model) renderWeekStrip() string {
	selected := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(m.styles.SelectedBgColor)).
		Padding(0, 1)
	plain := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.MutedTextColor)).
		Padding(0, 1)

	var days []string
	for i := -3; i <= 3; i++ {
		d, _ := time.Parse(session.DateKeyLayout, m.sess.DateKeyFor(m.sess.Offset()+i))
		cell := fmt.Sprintf("%s %d", d.Format("Mon"), d.Day())
		if i == 0 {
			days = append(days, selected.Render(cell))
		} else {
			days = append(days, plain.Render(cell))
		}
	}

	date := m.sess.SelectedDate()
	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.NormalTextColor)).
		Render(date.Format("Monday, Jan 2 2006"))

	return header + "\n" + strings.Join(days, " ")
}

// renderProgress draws the selected day's completion bar. It counts every
// task of the day, whatever the section filters hide.
func (m Model) renderProgress() string {
	p := m.sess.Progress(m.sess.SelectedDateKey())

	const width = 20
	filled := 0
	if p.Total > 0 {
		filled = p.Percent * width / 100
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	return fmt.Sprintf("%s %d%%  %d of %d completed",
		lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.AccentColor)).Render(bar),
		p.Percent, p.Done, p.Total)
}

// renderForm renders the input form for adding/editing tasks
func (m Model) renderForm() string {
	var sb strings.Builder

	formStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.styles.BorderColor)).
		Padding(1, 2)

	labels := []string{"Title:", "Tag:", "Priority:", "Status:", "Date:", "Start time:", "End time:"}
	for i, in := range []string{
		m.titleInput.View(),
		m.tagInput.View(),
		m.prioInput.View(),
		m.statusInput.View(),
		m.dateInput.View(),
		m.startInput.View(),
		m.endInput.View(),
	} {
		sb.WriteString(labels[i])
		sb.WriteString("\n")
		sb.WriteString(in)
		if i < len(labels)-1 {
			sb.WriteString("\n\n")
		}
	}

	return formStyle.Render(sb.String()) +
		"\n\n" +
		lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.MutedTextColor)).
			Render("Tab: next field • Enter: submit • Esc: cancel")
}

// renderFilterPanel shows the targeted section's filter state
func (m Model) renderFilterPanel() string {
	f := m.sess.GetFilter(m.filterSection)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tag:      %s\n", f.Tag))
	sb.WriteString(fmt.Sprintf("Priority: %s\n", f.Priority))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.MutedTextColor)).
		Render("t: cycle tag • p: cycle priority • c: clear • Esc: close"))
	return sb.String()
}

// renderHelp lists the key bindings
func (m Model) renderHelp() string {
	bindings := []struct{ keys, help string }{
		{m.keyMap.QuitApp.Help().Key, m.keyMap.QuitApp.Help().Desc},
		{m.keyMap.AddTask.Help().Key, m.keyMap.AddTask.Help().Desc},
		{m.keyMap.EditTask.Help().Key, m.keyMap.EditTask.Help().Desc},
		{m.keyMap.DeleteTask.Help().Key, m.keyMap.DeleteTask.Help().Desc},
		{m.keyMap.ToggleDone.Help().Key, m.keyMap.ToggleDone.Help().Desc},
		{m.keyMap.MoveInProgress.Help().Key, m.keyMap.MoveInProgress.Help().Desc},
		{m.keyMap.PrevDay.Help().Key, m.keyMap.PrevDay.Help().Desc},
		{m.keyMap.NextDay.Help().Key, m.keyMap.NextDay.Help().Desc},
		{m.keyMap.JumpToToday.Help().Key, m.keyMap.JumpToToday.Help().Desc},
		{m.keyMap.CollapseSection.Help().Key, m.keyMap.CollapseSection.Help().Desc},
		{m.keyMap.FilterSection.Help().Key, m.keyMap.FilterSection.Help().Desc},
		{m.keyMap.CalcTime.Help().Key, m.keyMap.CalcTime.Help().Desc},
		{m.keyMap.ToggleTheme.Help().Key, m.keyMap.ToggleTheme.Help().Desc},
	}

	var sb strings.Builder
	keyStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.AccentColor))
	for _, b := range bindings {
		sb.WriteString(fmt.Sprintf("%s  %s\n", keyStyle.Render(fmt.Sprintf("%-10s", b.keys)), b.help))
	}
	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.MutedTextColor)).
		Render("Esc: close"))
	return sb.String()
}
