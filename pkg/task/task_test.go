package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkDoneRemembersSection(t *testing.T) {
	tk := Task{Section: SectionToDo}
	tk.MarkDone()
	assert.Equal(t, SectionDone, tk.Section)
	assert.Equal(t, SectionToDo, tk.PreviousSection)

	tk = Task{Section: SectionInProgress}
	tk.MarkDone()
	assert.Equal(t, SectionDone, tk.Section)
	assert.Equal(t, SectionInProgress, tk.PreviousSection)
}

func TestMarkDoneTwiceKeepsMemory(t *testing.T) {
	tk := Task{Section: SectionInProgress}
	tk.MarkDone()
	tk.MarkDone()
	assert.Equal(t, SectionInProgress, tk.PreviousSection)
}

func TestRevertRestoresAndClears(t *testing.T) {
	tk := Task{Section: SectionToDo}
	tk.MarkDone()
	tk.Revert()
	assert.Equal(t, SectionToDo, tk.Section)
	assert.Equal(t, Section(""), tk.PreviousSection)
}

func TestRevertIsShallow(t *testing.T) {
	// To Do -> In Progress -> Done -> revert lands on In Progress: the
	// memory holds only the state that immediately preceded Done.
	tk := Task{Section: SectionToDo}
	tk.Advance()
	tk.MarkDone()
	tk.Revert()
	assert.Equal(t, SectionInProgress, tk.Section)
	assert.Equal(t, Section(""), tk.PreviousSection)
}

func TestRevertWithoutMemoryFallsBackToToDo(t *testing.T) {
	tk := Task{Section: SectionDone}
	tk.Revert()
	assert.Equal(t, SectionToDo, tk.Section)
}

func TestRevertOnActiveTaskIsNoop(t *testing.T) {
	tk := Task{Section: SectionInProgress}
	tk.Revert()
	assert.Equal(t, SectionInProgress, tk.Section)
}

func TestAdvanceOnlyFromToDo(t *testing.T) {
	tk := Task{Section: SectionToDo}
	tk.Advance()
	assert.Equal(t, SectionInProgress, tk.Section)

	tk.Advance()
	assert.Equal(t, SectionInProgress, tk.Section)

	done := Task{Section: SectionDone}
	done.Advance()
	assert.Equal(t, SectionDone, done.Section)
}

func TestSectionValid(t *testing.T) {
	assert.True(t, SectionToDo.Valid())
	assert.True(t, SectionInProgress.Valid())
	assert.True(t, SectionDone.Valid())
	assert.False(t, Section("").Valid())
	assert.False(t, Section("Archived").Valid())
}
