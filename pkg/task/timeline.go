package task

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatClock12 converts a 24-hour "HH:MM" string to a compact 12-hour
// display form ("9am", "2:30pm"). Returns "" for empty or unparseable input.
func FormatClock12(hhmm string) string {
	if hhmm == "" {
		return ""
	}
	hStr, mStr, _ := strings.Cut(hhmm, ":")
	h, err := strconv.Atoi(hStr)
	if err != nil {
		return ""
	}
	m := 0
	if mStr != "" {
		m, _ = strconv.Atoi(mStr)
	}
	suffix := "am"
	if h >= 12 {
		suffix = "pm"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	if m == 0 {
		return fmt.Sprintf("%d%s", h, suffix)
	}
	return fmt.Sprintf("%d:%02d%s", h, m, suffix)
}

// FormatWindow renders a task's time window for display. Either side of the
// window may be absent.
func FormatWindow(startTime, endTime string) string {
	s := FormatClock12(startTime)
	e := FormatClock12(endTime)
	switch {
	case s != "" && e != "":
		return s + "-" + e
	case s != "":
		return s
	case e != "":
		return "-" + e
	default:
		return ""
	}
}

// WindowMinutes returns the length of the task's time window in minutes,
// or 0 when either side is missing or the window is not positive.
func (t *Task) WindowMinutes() int {
	start, okS := parseMinutes(t.StartTime)
	end, okE := parseMinutes(t.EndTime)
	if !okS || !okE || end <= start {
		return 0
	}
	return end - start
}

func parseMinutes(hhmm string) (int, bool) {
	hStr, mStr, found := strings.Cut(hhmm, ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(hStr)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(mStr)
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}
