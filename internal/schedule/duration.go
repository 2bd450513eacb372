package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Duration bounds for user-entered meeting lengths, in minutes.
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 480
)

// ParseDuration turns free-text duration input into minutes. Two formats are
// accepted: plain integer minutes ("30") and clock format ("1:30"). The result
// must land in [MinDurationMinutes, MaxDurationMinutes]; anything else reports
// ok=false. Surrounding whitespace is trimmed, internal whitespace is not.
func ParseDuration(input string) (int, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, false
	}

	var minutes int
	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) != 2 {
			return 0, false
		}
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, false
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil || m < 0 || m > 59 {
			return 0, false
		}
		if h < 0 {
			return 0, false
		}
		minutes = h*60 + m
	} else {
		m, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		minutes = m
	}

	if minutes < MinDurationMinutes || minutes > MaxDurationMinutes {
		return 0, false
	}
	return minutes, true
}

// IsValidDurationOption reports whether input parses as a usable duration.
func IsValidDurationOption(input string) bool {
	_, ok := ParseDuration(input)
	return ok
}

// DurationLabel renders minutes as a human label: "1 hour", "45 minutes",
// "2 hours 1 minute". Both parts appear only when both are non-zero.
func DurationLabel(minutes int) string {
	h := minutes / 60
	m := minutes % 60

	var parts []string
	if h == 1 {
		parts = append(parts, "1 hour")
	} else if h > 1 {
		parts = append(parts, fmt.Sprintf("%d hours", h))
	}
	if m == 1 {
		parts = append(parts, "1 minute")
	} else if m > 1 || h == 0 {
		parts = append(parts, fmt.Sprintf("%d minutes", m))
	}

	return strings.Join(parts, " ")
}

// FormatCreateLabel builds the "Add …" option label shown for a typed-in
// duration, or "Invalid duration" when the input does not parse.
func FormatCreateLabel(input string) string {
	minutes, ok := ParseDuration(input)
	if !ok {
		return "Invalid duration"
	}
	return "Add " + DurationLabel(minutes)
}
