package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"30", 30, true},
		{"1", 1, true},
		{"480", 480, true},
		{" 45 ", 45, true},
		{"1:30", 90, true},
		{"8:00", 480, true},
		{"2:55", 175, true},
		{"0:01", 1, true},

		{"", 0, false},
		{"   ", 0, false},
		{"0", 0, false},
		{"-10", 0, false},
		{"481", 0, false},
		{"8:01", 0, false},
		{"abc", 0, false},
		{"1:60", 0, false},
		{"1:70", 0, false},
		{"1:2:3", 0, false},
		{"1:ab", 0, false},
		{"-1:30", 0, false},
		{"1.5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDuration(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, IsValidDurationOption(tt.input))
		})
	}
}

func TestDurationLabel(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{1, "1 minute"},
		{45, "45 minutes"},
		{60, "1 hour"},
		{120, "2 hours"},
		{90, "1 hour 30 minutes"},
		{121, "2 hours 1 minute"},
		{61, "1 hour 1 minute"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DurationLabel(tt.minutes))
	}
}

func TestFormatCreateLabel(t *testing.T) {
	assert.Equal(t, "Add 2 hours 55 minutes", FormatCreateLabel("2:55"))
	assert.Equal(t, "Add 30 minutes", FormatCreateLabel("30"))
	assert.Equal(t, "Add 1 hour", FormatCreateLabel("1:00"))
	assert.Equal(t, "Invalid duration", FormatCreateLabel("1:70"))
	assert.Equal(t, "Invalid duration", FormatCreateLabel(""))
	assert.Equal(t, "Invalid duration", FormatCreateLabel("500"))
}
