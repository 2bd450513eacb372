package schedule

import "fmt"

// Wall-clock times are "HH:MM" strings between "00:00" and "24:00" inclusive,
// with "24:00" acting as the end-of-day sentinel. They carry no date or zone;
// callers resolve the zone themselves. Inputs outside that range must be
// validated upstream.

const minutesPerDay = 24 * 60

func minuteOfDay(t string) int {
	var h, m int
	fmt.Sscanf(t, "%d:%d", &h, &m)
	return h*60 + m
}

func formatMinuteOfDay(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutes moves t forward, clamping at "24:00". It never wraps into the
// next day; crossing midnight is the caller's problem.
func AddMinutes(t string, minutes int) string {
	m := minuteOfDay(t) + minutes
	if m > minutesPerDay {
		m = minutesPerDay
	}
	return formatMinuteOfDay(m)
}

// SubtractMinutes moves t backward, flooring at "00:00".
func SubtractMinutes(t string, minutes int) string {
	m := minuteOfDay(t) - minutes
	if m < 0 {
		m = 0
	}
	return formatMinuteOfDay(m)
}

// Compare orders two wall-clock times by minute of day, standard comparator
// contract: negative when a is earlier, zero when equal, positive otherwise.
func Compare(a, b string) int {
	return minuteOfDay(a) - minuteOfDay(b)
}
