package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devansh-sys/todo-list-cts/pkg/task"
)

func TestFilterDefaultsToAll(t *testing.T) {
	s := newTestSession(&memStore{})
	f := s.GetFilter(task.SectionToDo)
	assert.Equal(t, Filter{Tag: FilterAll, Priority: FilterAll}, f)
}

func TestFilterMatchesClassifiedValues(t *testing.T) {
	f := Filter{Tag: "work", Priority: FilterAll}
	assert.True(t, f.Matches(task.Task{Tag: "Work/Life"}))
	assert.False(t, f.Matches(task.Task{Tag: "Healthier"}))

	f = Filter{Tag: FilterAll, Priority: "high"}
	assert.True(t, f.Matches(task.Task{Priority: "Higher"}))
	assert.False(t, f.Matches(task.Task{Priority: "Medium"}))

	// Both dimensions must pass
	f = Filter{Tag: "health", Priority: "low"}
	assert.True(t, f.Matches(task.Task{Tag: "health", Priority: "Low-key"}))
	assert.False(t, f.Matches(task.Task{Tag: "health", Priority: "high"}))
}

func TestFiltersAreIndependentPerSection(t *testing.T) {
	s := newTestSession(&memStore{})

	s.SetTagFilter(task.SectionToDo, "work")
	assert.Equal(t, "work", s.GetFilter(task.SectionToDo).Tag)
	assert.Equal(t, FilterAll, s.GetFilter(task.SectionInProgress).Tag)
	assert.Equal(t, FilterAll, s.GetFilter(task.SectionDone).Tag)

	s.SetPriorityFilter(task.SectionDone, "low")
	assert.Equal(t, FilterAll, s.GetFilter(task.SectionToDo).Priority)
	assert.Equal(t, "low", s.GetFilter(task.SectionDone).Priority)

	s.ClearFilter(task.SectionToDo)
	assert.Equal(t, Filter{Tag: FilterAll, Priority: FilterAll}, s.GetFilter(task.SectionToDo))
	assert.Equal(t, "low", s.GetFilter(task.SectionDone).Priority)
}

func TestVisibleAppliesScopeSectionAndFilter(t *testing.T) {
	s := newTestSession(&memStore{})
	day := s.SelectedDateKey()

	s.Create(Fields{Title: "bills", Tag: "work", Priority: "high"})
	s.Create(Fields{Title: "run", Tag: "health", Priority: "mid"})
	s.Create(Fields{Title: "tomorrow", Tag: "work", Date: "2026-02-26"})
	inProg, _ := s.Create(Fields{Title: "deck", Tag: "work", Priority: "low"})
	require.NoError(t, s.Advance(inProg.ID))

	visible := s.Visible(day, task.SectionToDo)
	require.Len(t, visible, 2)
	assert.Equal(t, "bills", visible[0].Title)
	assert.Equal(t, "run", visible[1].Title)

	s.SetTagFilter(task.SectionToDo, "work")
	visible = s.Visible(day, task.SectionToDo)
	require.Len(t, visible, 1)
	assert.Equal(t, "bills", visible[0].Title)

	// The In Progress section is untouched by the To Do filter
	visible = s.Visible(day, task.SectionInProgress)
	require.Len(t, visible, 1)
	assert.Equal(t, "deck", visible[0].Title)
}

func TestFiltersNeverMutateTasks(t *testing.T) {
	s := newTestSession(&memStore{})
	s.Create(Fields{Title: "bills", Tag: "work"})

	before := s.All()
	s.SetTagFilter(task.SectionToDo, "health")
	s.SetPriorityFilter(task.SectionToDo, "low")
	assert.Equal(t, before, s.All())
}

func TestProgressIgnoresFilters(t *testing.T) {
	s := newTestSession(&memStore{})
	day := s.SelectedDateKey()

	a, _ := s.Create(Fields{Title: "a", Tag: "work"})
	s.Create(Fields{Title: "b", Tag: "health"})
	require.NoError(t, s.ToggleDone(a.ID, true))

	want := s.Progress(day)
	s.SetTagFilter(task.SectionToDo, "work")
	s.SetPriorityFilter(task.SectionDone, "high")
	assert.Equal(t, want, s.Progress(day))
	assert.Equal(t, Progress{Done: 1, Total: 2, Percent: 50}, s.Progress(day))
}
