package notifications

import (
	"fmt"
	"time"
)

type offsetValue int

const (
	offsetValue5Minutes offsetValue = iota
	offsetValue10Minutes
	offsetValue15Minutes
	offsetValue30Minutes
	offsetValueHour
	offsetValueDay
)

func mapToOffsetValue(d time.Duration) (offsetValue, error) {
	var val offsetValue
	switch d {
	case 5 * time.Minute:
		val = offsetValue5Minutes
	case 10 * time.Minute:
		val = offsetValue10Minutes
	case 15 * time.Minute:
		val = offsetValue15Minutes
	case 30 * time.Minute:
		val = offsetValue30Minutes
	case 1 * time.Hour:
		val = offsetValueHour
	case 24 * time.Hour:
		val = offsetValueDay
	default:
		return 0, fmt.Errorf("unsupported reminder offset: %v", d)
	}

	return val, nil
}
