package meetings

import (
	"fmt"
	"time"

	"github.com/meetwith/scheduler-backend/internal/model"
	"github.com/teambition/rrule-go"
)

// Horizon for recurrences with neither a count nor an until date.
const unboundedRecurrenceHorizon = 365 * 24 * time.Hour

var weekdays = map[string]rrule.Weekday{
	"MO": rrule.MO,
	"TU": rrule.TU,
	"WE": rrule.WE,
	"TH": rrule.TH,
	"FR": rrule.FR,
	"SA": rrule.SA,
	"SU": rrule.SU,
}

func getRule(spec *model.RecurrenceSpec, from time.Time) (*rrule.RRule, error) {
	var freq rrule.Frequency

	switch spec.Frequency {
	case model.FrequencyDaily:
		freq = rrule.DAILY
	case model.FrequencyWeekly:
		freq = rrule.WEEKLY
	case model.FrequencyMonthly:
		freq = rrule.MONTHLY
	default:
		return nil, fmt.Errorf("unknown frequency: %v", spec.Frequency)
	}

	interval := spec.Interval
	if interval <= 0 {
		interval = 1
	}

	opt := rrule.ROption{
		Freq:     freq,
		Interval: interval,
		Dtstart:  from.UTC(),
	}

	for _, wd := range spec.ByWeekday {
		day, ok := weekdays[wd]
		if !ok {
			return nil, fmt.Errorf("unknown weekday: %q", wd)
		}
		opt.Byweekday = append(opt.Byweekday, day)
	}

	// Count and Until are mutually exclusive; Count wins when both are set.
	// Without either the expansion stops at a fixed horizon.
	switch {
	case spec.Count > 0:
		opt.Count = spec.Count
	case spec.Until != nil:
		opt.Until = spec.Until.UTC()
	default:
		opt.Until = from.UTC().Add(unboundedRecurrenceHorizon)
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, fmt.Errorf("creating rule: %w", err)
	}

	return rule, nil
}

// expand turns the template start/end plus a recurrence into concrete
// instances, each preserving the template's time of day and duration. A nil
// recurrence yields the single template occurrence.
func expand(info *model.MeetingCreate) ([]*model.Meeting, string, error) {
	duration := info.End.Sub(info.Start)

	instance := func(start time.Time) *model.Meeting {
		return &model.Meeting{
			OwnerAddress: info.OwnerAddress,
			Participants: info.Participants,
			Title:        info.Title,
			Description:  info.Description,
			Start:        start,
			End:          start.Add(duration),
			Reminders:    info.Reminders,
		}
	}

	if info.Recurrence == nil {
		return []*model.Meeting{instance(info.Start)}, "", nil
	}

	rule, err := getRule(info.Recurrence, info.Start)
	if err != nil {
		return nil, "", err
	}

	occurrences := rule.All()
	if len(occurrences) == 0 {
		return nil, "", fmt.Errorf("recurrence produces no occurrences")
	}

	res := make([]*model.Meeting, len(occurrences))
	for i, occ := range occurrences {
		res[i] = instance(occ)
	}

	return res, rule.String(), nil
}
