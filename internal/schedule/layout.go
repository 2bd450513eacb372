package schedule

import (
	"time"

	"github.com/meetwith/scheduler-backend/internal/model"
)

// LabelRow is one renderable row of a day's schedule. Exactly one of HeightPx
// and HeightMinutes drives layout; HeightPx wins when both are set. Zero
// means unset.
type LabelRow struct {
	Label         string
	HeightPx      int
	HeightMinutes int
}

// Vertical scale of the day view: one hour of calendar time maps to this many
// pixels, and every hour row keeps at least this baseline height.
const hourHeightPx = 48

func minutesToPx(minutes int) int {
	return minutes * hourHeightPx / 60
}

// LabelRowHeightPx resolves the pixel height of a row. An explicit HeightPx
// override wins; in timeRange mode a row with real interval minutes scales
// with those minutes; otherwise the height follows the slot duration, so a
// 15-minute grid renders shorter rows than a 60-minute one.
func LabelRowHeightPx(row LabelRow, slotDurationMinutes int, mode model.SchedulingMode) int {
	if row.HeightPx != 0 {
		return row.HeightPx
	}
	if mode == model.ModeTimeRange && row.HeightMinutes != 0 {
		return minutesToPx(row.HeightMinutes)
	}
	return minutesToPx(slotDurationMinutes)
}

// HourlyLabelRows lays out the 24 hour rows of day's schedule in loc. Every
// hour gets a row labeled with its wall-clock start; hours containing booked
// intervals grow past the baseline proportionally to the booked minutes, so
// occupied time visually expands. Rows are never zero-height.
func HourlyLabelRows(day time.Time, slots []Interval, loc *time.Location) []LabelRow {
	local := day.In(loc)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	rows := make([]LabelRow, 24)
	for h := 0; h < 24; h++ {
		hour := Interval{
			Start: midnight.Add(time.Duration(h) * time.Hour),
			End:   midnight.Add(time.Duration(h+1) * time.Hour),
		}

		booked := 0
		for _, s := range slots {
			booked += hour.overlapMinutes(s)
		}

		rows[h] = LabelRow{
			Label:    hour.Start.Format("15:04"),
			HeightPx: hourHeightPx + minutesToPx(booked),
		}
	}

	return rows
}
