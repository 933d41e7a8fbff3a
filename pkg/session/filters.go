package session

import "github.com/Devansh-sys/todo-list-cts/pkg/task"

// FilterAll disables a filter dimension
const FilterAll = "all"

// Filter is one section's tag/priority filter state. Each section filters
// independently; filters affect rendering only, never the stored tasks.
type Filter struct {
	Tag      string
	Priority string
}

func defaultFilter() Filter {
	return Filter{Tag: FilterAll, Priority: FilterAll}
}

// Matches reports whether a task passes the filter. The task's free-form
// tag and priority are classified by prefix first, so the filter agrees
// with the displayed labels.
func (f Filter) Matches(t task.Task) bool {
	if f.Tag != FilterAll && string(task.ClassifyTag(t.Tag)) != f.Tag {
		return false
	}
	if f.Priority != FilterAll && string(task.ClassifyPriority(t.Priority)) != f.Priority {
		return false
	}
	return true
}

// GetFilter returns a section's filter state, default all/all
func (s *Session) GetFilter(section task.Section) Filter {
	if f, ok := s.filters[section]; ok {
		return f
	}
	return defaultFilter()
}

// SetTagFilter sets a section's tag filter ("all" or a tag class)
func (s *Session) SetTagFilter(section task.Section, value string) {
	f := s.GetFilter(section)
	f.Tag = value
	s.filters[section] = f
}

// SetPriorityFilter sets a section's priority filter ("all" or a priority class)
func (s *Session) SetPriorityFilter(section task.Section, value string) {
	f := s.GetFilter(section)
	f.Priority = value
	s.filters[section] = f
}

// ClearFilter resets a section's filter to all/all
func (s *Session) ClearFilter(section task.Section) {
	delete(s.filters, section)
}

// Visible returns the given day's tasks belonging to a section that pass
// the section's filter, in insertion order.
func (s *Session) Visible(dateKey string, section task.Section) []task.Task {
	f := s.GetFilter(section)
	var out []task.Task
	for _, t := range s.Scoped(dateKey) {
		if t.Section == section && f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
