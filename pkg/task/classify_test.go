package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTag(t *testing.T) {
	tests := []struct {
		in   string
		want TagClass
	}{
		{"work", TagWork},
		{"Work/Life", TagWork},
		{"WORKOUT PREP", TagWork},
		{"health", TagHealth},
		{"Healthier", TagHealth},
		{"Personal", TagOther},
		{"", TagOther},
		{"wor", TagOther}, // tag prefixes are full words
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyTag(tt.in), "tag %q", tt.in)
	}
}

func TestClassifyPriority(t *testing.T) {
	tests := []struct {
		in   string
		want PriorityClass
	}{
		{"high", PriorityHigh},
		{"Higher", PriorityHigh},
		{"hi", PriorityHigh}, // two-letter prefix, unlike tags
		{"low", PriorityLow},
		{"Low-key", PriorityLow},
		{"Medium", PriorityMid},
		{"mid", PriorityMid},
		{"", PriorityMid},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyPriority(tt.in), "priority %q", tt.in)
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Health", TagLabel("Healthier"))
	assert.Equal(t, "Work", TagLabel("workshop"))
	assert.Equal(t, "Other", TagLabel("errands"))

	assert.Equal(t, "High", PriorityLabel("Higher"))
	assert.Equal(t, "Low", PriorityLabel("lowest"))
	assert.Equal(t, "Mid", PriorityLabel("Medium"))
}
