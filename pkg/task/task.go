package task

// Section represents a task's workflow state
type Section string

const (
	SectionToDo       Section = "To Do"
	SectionInProgress Section = "In Progress"
	SectionDone       Section = "Done"
)

// Sections lists the workflow states in display order
var Sections = []Section{SectionToDo, SectionInProgress, SectionDone}

// Valid reports whether s is one of the three defined workflow states
func (s Section) Valid() bool {
	switch s {
	case SectionToDo, SectionInProgress, SectionDone:
		return true
	}
	return false
}

// Task represents a single scheduled todo item. The JSON layout matches the
// persisted payload: an empty PreviousSection stands for "no revert memory",
// and Due is a legacy field carried only for payload compatibility.
type Task struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Due             string  `json:"due"`
	Tag             string  `json:"tag"`
	Priority        string  `json:"prio"`
	Section         Section `json:"section"`
	PreviousSection Section `json:"previousSection"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Date            string  `json:"date"`
}

// MarkDone moves the task into Done, remembering the state it left so an
// accidental completion can be undone. Marking an already-Done task again
// is a no-op and does not clobber the memory.
func (t *Task) MarkDone() {
	if t.Section == SectionDone {
		return
	}
	t.PreviousSection = t.Section
	t.Section = SectionDone
}

// Revert undoes a completion: the task returns to the remembered section
// (To Do when there is none) and the memory is cleared. The memory is a
// single slot, so only the state immediately before Done is restored.
// Reverting a task that is not Done is a no-op.
func (t *Task) Revert() {
	if t.Section != SectionDone {
		return
	}
	revertTo := t.PreviousSection
	if revertTo == "" {
		revertTo = SectionToDo
	}
	t.PreviousSection = ""
	t.Section = revertTo
}

// Advance moves the task from To Do to In Progress. There is no direct
// reverse action; the only way back out of a section is the Done revert.
func (t *Task) Advance() {
	if t.Section == SectionToDo {
		t.Section = SectionInProgress
	}
}

// Locked reports whether the task's fields may not be edited
func (t *Task) Locked() bool {
	return t.Section == SectionDone
}
