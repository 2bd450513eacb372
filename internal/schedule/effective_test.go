package schedule

import (
	"testing"

	"github.com/meetwith/scheduler-backend/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestEffectiveDuration(t *testing.T) {
	rng := &model.TimeRange{StartTime: "09:00", EndTime: "10:30"}

	tests := []struct {
		name      string
		mode      model.SchedulingMode
		base      int
		timeRange *model.TimeRange
		want      int
	}{
		{"preset trusts base", model.ModePreset, 60, nil, 60},
		{"preset ignores range", model.ModePreset, 60, rng, 60},
		{"custom trusts base", model.ModeCustom, 25, rng, 25},
		{"time range derives from range", model.ModeTimeRange, 60, rng, 90},
		{"time range falls back to base", model.ModeTimeRange, 60, nil, 60},
		{"range ending at midnight sentinel", model.ModeTimeRange, 0, &model.TimeRange{StartTime: "23:00", EndTime: "24:00"}, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveDuration(tt.mode, tt.base, tt.timeRange))
		})
	}
}
