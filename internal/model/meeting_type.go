package model

import (
	"github.com/gerow/go-color"
)

// SchedulingMode governs how the effective meeting duration is derived.
type SchedulingMode int

const (
	ModePreset SchedulingMode = iota
	ModeCustom
	ModeTimeRange
)

// TimeRange is a same-day wall-clock range, end strictly after start.
// The sentinel "24:00" is allowed as end.
type TimeRange struct {
	StartTime string
	EndTime   string
}

type MeetingTypeCreate struct {
	OwnerAddress    string
	Title           string
	Description     string
	Mode            SchedulingMode
	DurationMinutes int
	TimeRange       *TimeRange
	Color           color.RGB
	GateID          string
	Paid            bool
}

type MeetingType struct {
	ID int64
	MeetingTypeCreate
}

type SlotAllotment struct {
	AccountAddress string
	Used           int
	Limit          int
}

func (a SlotAllotment) Exhausted() bool {
	return a.Limit > 0 && a.Used >= a.Limit
}
