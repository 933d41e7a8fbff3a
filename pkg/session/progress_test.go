package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressEmptyDay(t *testing.T) {
	s := newTestSession(&memStore{})
	assert.Equal(t, Progress{}, s.Progress(s.SelectedDateKey()))
}

func TestProgressRounding(t *testing.T) {
	s := newTestSession(&memStore{})
	day := s.SelectedDateKey()

	ids := make([]int, 0, 3)
	for _, title := range []string{"a", "b", "c"} {
		tk, err := s.Create(Fields{Title: title})
		require.NoError(t, err)
		ids = append(ids, tk.ID)
	}

	require.NoError(t, s.ToggleDone(ids[0], true))
	assert.Equal(t, Progress{Done: 1, Total: 3, Percent: 33}, s.Progress(day))

	require.NoError(t, s.ToggleDone(ids[1], true))
	assert.Equal(t, Progress{Done: 2, Total: 3, Percent: 67}, s.Progress(day))
}

func TestProgressRoundsHalfUp(t *testing.T) {
	s := newTestSession(&memStore{})
	day := s.SelectedDateKey()

	var first int
	for i, title := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		tk, err := s.Create(Fields{Title: title})
		require.NoError(t, err)
		if i == 0 {
			first = tk.ID
		}
	}

	// 1/8 = 12.5%, rounds away from zero to 13
	require.NoError(t, s.ToggleDone(first, true))
	assert.Equal(t, 13, s.Progress(day).Percent)
}

func TestPlannedMinutesCountsToDoWindowsOnly(t *testing.T) {
	s := newTestSession(&memStore{})
	day := s.SelectedDateKey()

	s.Create(Fields{Title: "morning", StartTime: "09:00", EndTime: "10:30"})
	s.Create(Fields{Title: "untimed"})
	s.Create(Fields{Title: "broken", StartTime: "11:00", EndTime: "10:00"})

	inProg, _ := s.Create(Fields{Title: "running", StartTime: "13:00", EndTime: "14:00"})
	require.NoError(t, s.Advance(inProg.ID))

	done, _ := s.Create(Fields{Title: "finished", StartTime: "08:00", EndTime: "09:00"})
	require.NoError(t, s.ToggleDone(done.ID, true))

	s.Create(Fields{Title: "other day", StartTime: "09:00", EndTime: "17:00", Date: "2026-02-26"})

	assert.Equal(t, 90, s.PlannedMinutes(day))
}
