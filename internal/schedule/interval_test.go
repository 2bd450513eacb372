package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func interval(day time.Time, fromH, fromM, toH, toM int) Interval {
	return Interval{
		Start: day.Add(time.Duration(fromH)*time.Hour + time.Duration(fromM)*time.Minute),
		End:   day.Add(time.Duration(toH)*time.Hour + time.Duration(toM)*time.Minute),
	}
}

func TestIntervalOverlaps(t *testing.T) {
	day := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"disjoint", interval(day, 9, 0, 10, 0), interval(day, 11, 0, 12, 0), false},
		{"touching ends do not overlap", interval(day, 9, 0, 10, 0), interval(day, 10, 0, 11, 0), false},
		{"partial overlap", interval(day, 9, 0, 10, 0), interval(day, 9, 30, 10, 30), true},
		{"contained", interval(day, 9, 0, 12, 0), interval(day, 10, 0, 11, 0), true},
		{"identical", interval(day, 9, 0, 10, 0), interval(day, 9, 0, 10, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestOverlapsAny(t *testing.T) {
	day := time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)
	busy := []Interval{
		interval(day, 9, 0, 10, 0),
		interval(day, 14, 0, 15, 0),
	}

	assert.True(t, OverlapsAny(interval(day, 14, 30, 16, 0), busy))
	assert.False(t, OverlapsAny(interval(day, 10, 0, 14, 0), busy))
	assert.False(t, OverlapsAny(interval(day, 11, 0, 12, 0), nil))
}
