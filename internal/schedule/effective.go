package schedule

import "github.com/meetwith/scheduler-backend/internal/model"

// EffectiveDuration reconciles the three ways a user can pick a meeting
// length. Preset and custom modes trust the explicit base value; timeRange
// mode derives the length from the dragged-out range, falling back to base
// when no range was supplied. Callers guarantee EndTime > StartTime.
func EffectiveDuration(mode model.SchedulingMode, baseDuration int, timeRange *model.TimeRange) int {
	if mode == model.ModeTimeRange && timeRange != nil {
		return Compare(timeRange.EndTime, timeRange.StartTime)
	}
	return baseDuration
}
