package session

import (
	"math"

	"github.com/Devansh-sys/todo-list-cts/pkg/task"
)

// Progress summarizes completion for one day
type Progress struct {
	Done    int
	Total   int
	Percent int
}

// Progress computes completion for the given day. Section filters are
// deliberately not applied: the bar reflects the whole day, not the
// currently visible subset.
func (s *Session) Progress(dateKey string) Progress {
	var p Progress
	for _, t := range s.Scoped(dateKey) {
		p.Total++
		if t.Section == task.SectionDone {
			p.Done++
		}
	}
	if p.Total > 0 {
		p.Percent = int(math.Round(float64(p.Done) / float64(p.Total) * 100))
	}
	return p
}

// PlannedMinutes sums the time windows of the day's To Do tasks. Tasks
// with a missing or inverted window contribute nothing.
func (s *Session) PlannedMinutes(dateKey string) int {
	total := 0
	for _, t := range s.Scoped(dateKey) {
		if t.Section == task.SectionToDo {
			total += t.WindowMinutes()
		}
	}
	return total
}
