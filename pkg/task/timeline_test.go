package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatClock12(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"00:00", "12am"},
		{"00:30", "12:30am"},
		{"09:00", "9am"},
		{"12:00", "12pm"},
		{"14:30", "2:30pm"},
		{"23:05", "11:05pm"},
		{"garbage", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock12(tt.in), "clock %q", tt.in)
	}
}

func TestFormatWindow(t *testing.T) {
	assert.Equal(t, "9am-10:30am", FormatWindow("09:00", "10:30"))
	assert.Equal(t, "9am", FormatWindow("09:00", ""))
	assert.Equal(t, "-10:30am", FormatWindow("", "10:30"))
	assert.Equal(t, "", FormatWindow("", ""))
}

func TestWindowMinutes(t *testing.T) {
	tk := Task{StartTime: "09:00", EndTime: "10:30"}
	assert.Equal(t, 90, tk.WindowMinutes())

	// Missing or inverted windows count as zero
	assert.Equal(t, 0, (&Task{StartTime: "09:00"}).WindowMinutes())
	assert.Equal(t, 0, (&Task{EndTime: "10:00"}).WindowMinutes())
	assert.Equal(t, 0, (&Task{StartTime: "11:00", EndTime: "10:00"}).WindowMinutes())
	assert.Equal(t, 0, (&Task{StartTime: "10:00", EndTime: "10:00"}).WindowMinutes())
}
