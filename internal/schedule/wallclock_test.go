package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		time    string
		minutes int
		want    string
	}{
		{"simple", "09:00", 30, "09:30"},
		{"crosses hour", "09:45", 30, "10:15"},
		{"zero is a no-op", "13:37", 0, "13:37"},
		{"clamped at end of day", "23:00", 120, "24:00"},
		{"exactly end of day", "23:30", 30, "24:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMinutes(tt.time, tt.minutes))
		})
	}
}

func TestSubtractMinutes(t *testing.T) {
	tests := []struct {
		name    string
		time    string
		minutes int
		want    string
	}{
		{"simple", "09:30", 30, "09:00"},
		{"crosses hour", "10:15", 30, "09:45"},
		{"zero is a no-op", "13:37", 0, "13:37"},
		{"floored at midnight", "01:00", 120, "00:00"},
		{"exactly midnight", "00:30", 30, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubtractMinutes(tt.time, tt.minutes))
		})
	}
}

func TestCompare(t *testing.T) {
	assert.Zero(t, Compare("09:00", "09:00"))
	assert.Negative(t, Compare("08:59", "09:00"))
	assert.Positive(t, Compare("09:01", "09:00"))

	// antisymmetry and transitivity over a few points
	times := []string{"00:00", "07:15", "12:00", "23:59", "24:00"}
	for i, a := range times {
		for j, b := range times {
			if i < j {
				assert.Negative(t, Compare(a, b))
				assert.Positive(t, Compare(b, a))
			}
		}
	}
}
