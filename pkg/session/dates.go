package session

import (
	"time"

	"github.com/Devansh-sys/todo-list-cts/pkg/task"
)

// DateKeyLayout is the canonical day key format tasks are scheduled under
const DateKeyLayout = "2006-01-02"

// Offset returns the selected day as a signed offset from today
func (s *Session) Offset() int {
	return s.offset
}

// SetOffset selects the day at the given offset from today
func (s *Session) SetOffset(offset int) {
	s.offset = offset
}

// Shift moves the selected day forward or back
func (s *Session) Shift(days int) {
	s.offset += days
}

// JumpToToday resets the selection to the current day
func (s *Session) JumpToToday() {
	s.offset = 0
}

// DateKeyFor resolves "today + offset days" to a day key. Today is read
// from the clock on every call, so a session left open across midnight
// picks up the new day on its next interaction.
func (s *Session) DateKeyFor(offset int) string {
	return s.now().AddDate(0, 0, offset).Format(DateKeyLayout)
}

// SelectedDateKey resolves the currently selected day to its key
func (s *Session) SelectedDateKey() string {
	return s.DateKeyFor(s.offset)
}

// SelectedDate returns the selected day as a time value, for display
func (s *Session) SelectedDate() time.Time {
	d, _ := time.Parse(DateKeyLayout, s.SelectedDateKey())
	return d
}

// Scoped returns the tasks scheduled on the given day, in insertion order
func (s *Session) Scoped(dateKey string) []task.Task {
	var out []task.Task
	for _, t := range s.tasks {
		if t.Date == dateKey {
			out = append(out, t)
		}
	}
	return out
}
