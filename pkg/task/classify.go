package task

import "strings"

// TagClass is the normalized bucket a free-form tag falls into
type TagClass string

const (
	TagWork   TagClass = "work"
	TagHealth TagClass = "health"
	TagOther  TagClass = "other"
)

// PriorityClass is the normalized bucket a free-form priority falls into
type PriorityClass string

const (
	PriorityHigh PriorityClass = "high"
	PriorityMid  PriorityClass = "mid"
	PriorityLow  PriorityClass = "low"
)

// ClassifyTag buckets a free-form tag by case-insensitive prefix, so minor
// label variants like "Work/Life" still land in the right class.
func ClassifyTag(tag string) TagClass {
	t := strings.ToLower(tag)
	switch {
	case strings.HasPrefix(t, "work"):
		return TagWork
	case strings.HasPrefix(t, "health"):
		return TagHealth
	default:
		return TagOther
	}
}

// ClassifyPriority buckets a free-form priority. The prefixes are two
// letters ("hi"/"lo"), unlike the full-word tag prefixes, so "Higher" is
// high and "Low-key" is low; anything else is mid.
func ClassifyPriority(prio string) PriorityClass {
	p := strings.ToLower(prio)
	switch {
	case strings.HasPrefix(p, "hi"):
		return PriorityHigh
	case strings.HasPrefix(p, "lo"):
		return PriorityLow
	default:
		return PriorityMid
	}
}

// TagLabel returns the display label for a tag
func TagLabel(tag string) string {
	switch ClassifyTag(tag) {
	case TagWork:
		return "Work"
	case TagHealth:
		return "Health"
	default:
		return "Other"
	}
}

// PriorityLabel returns the display label for a priority
func PriorityLabel(prio string) string {
	switch ClassifyPriority(prio) {
	case PriorityHigh:
		return "High"
	case PriorityLow:
		return "Low"
	default:
		return "Mid"
	}
}
