package session

import (
	"strings"
	"time"

	"github.com/Devansh-sys/todo-list-cts/pkg/task"
	"github.com/Devansh-sys/todo-list-cts/pkg/utils"
)

// Store is the persistence boundary the session saves through. Load never
// fails hard (missing or corrupt state comes back empty); Save errors are
// absorbed by the session, since in-memory state stays authoritative for
// the rest of the session either way.
type Store interface {
	Load() ([]task.Task, int)
	Save(tasks []task.Task, nextID int) error
}

// Fields carries the user-editable parts of a task through create and edit
type Fields struct {
	Title     string
	Tag       string
	Priority  string
	Section   task.Section
	StartTime string
	EndTime   string
	Date      string
}

// Session owns one application session's state: the ordered task list, the
// id counter, the selected day offset and the per-section filters. All
// mutation goes through its methods and every mutation is saved.
type Session struct {
	store   Store
	tasks   []task.Task
	nextID  int
	offset  int
	filters map[task.Section]Filter

	now func() time.Time
}

// New creates a session over the given store and loads the persisted state
func New(store Store) *Session {
	s := &Session{
		store:   store,
		filters: make(map[task.Section]Filter),
		now:     time.Now,
	}
	s.tasks, s.nextID = store.Load()
	return s
}

// Create adds a new task. The id is assigned from the monotonic counter,
// the section defaults to To Do and the date to the selected day.
func (s *Session) Create(f Fields) (task.Task, error) {
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return task.Task{}, task.ErrEmptyTitle
	}

	section := f.Section
	if !section.Valid() {
		section = task.SectionToDo
	}
	date := f.Date
	if date == "" {
		date = s.SelectedDateKey()
	}

	t := task.Task{
		ID:        s.nextID,
		Title:     title,
		Tag:       f.Tag,
		Priority:  f.Priority,
		Section:   section,
		StartTime: f.StartTime,
		EndTime:   f.EndTime,
		Date:      date,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	s.persist()
	return t, nil
}

// Update edits an existing task. Completed tasks are locked: the only way
// to change one is the toggle path back out of Done. Choosing Done as the
// new status records the state being left, like the checkbox does.
func (s *Session) Update(id int, f Fields) (task.Task, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return task.Task{}, task.ErrNotFound
	}
	t := &s.tasks[idx]
	if t.Locked() {
		return task.Task{}, task.ErrEditLocked
	}
	title := strings.TrimSpace(f.Title)
	if title == "" {
		return task.Task{}, task.ErrEmptyTitle
	}

	section := f.Section
	if !section.Valid() {
		section = t.Section
	}
	if section == task.SectionDone && t.Section != task.SectionDone {
		t.PreviousSection = t.Section
	}

	t.Title = title
	t.Tag = f.Tag
	t.Priority = f.Priority
	t.Section = section
	t.StartTime = f.StartTime
	t.EndTime = f.EndTime
	if f.Date != "" {
		t.Date = f.Date
	}
	s.persist()
	return *t, nil
}

// Delete removes a task permanently. Returns false when the id is stale.
func (s *Session) Delete(id int) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.persist()
	return true
}

// Find returns the task with the given id
func (s *Session) Find(id int) (task.Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return task.Task{}, false
	}
	return s.tasks[idx], true
}

// All returns the tasks in insertion order
func (s *Session) All() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// ToggleDone applies the checkbox: checking completes the task with revert
// memory, unchecking a completed task restores the remembered section.
func (s *Session) ToggleDone(id int, checked bool) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return task.ErrNotFound
	}
	if checked {
		s.tasks[idx].MarkDone()
	} else {
		s.tasks[idx].Revert()
	}
	s.persist()
	return nil
}

// Advance moves a To Do task into In Progress
func (s *Session) Advance(id int) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return task.ErrNotFound
	}
	s.tasks[idx].Advance()
	s.persist()
	return nil
}

// SetSection moves a task to an explicit status, recording revert memory
// when the move enters Done. Leaving Done goes through ToggleDone only.
func (s *Session) SetSection(id int, section task.Section) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return task.ErrNotFound
	}
	t := &s.tasks[idx]
	if t.Locked() {
		return task.ErrEditLocked
	}
	if section == task.SectionDone {
		t.MarkDone()
	} else if section.Valid() {
		t.Section = section
	}
	s.persist()
	return nil
}

func (s *Session) indexOf(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// persist saves after a mutation. A failed write is logged and otherwise
// ignored: the in-memory state stays authoritative and the next successful
// save reconciles.
func (s *Session) persist() {
	if err := s.store.Save(s.tasks, s.nextID); err != nil {
		utils.Log("Failed to save tasks: %v", err)
	}
}
