package model

import "time"

type Frequency int

const (
	FrequencyDaily Frequency = iota
	FrequencyWeekly
	FrequencyMonthly
)

// RecurrenceSpec describes how a meeting template repeats. Count and Until are
// mutually exclusive terminal conditions; when both are zero the expansion is
// capped at one year from the template start.
type RecurrenceSpec struct {
	Frequency Frequency
	Interval  int
	Count     int
	Until     *time.Time
	ByWeekday []string
}

type MeetingCreate struct {
	OwnerAddress  string
	Participants  []string
	Title         string
	Description   string
	MeetingTypeID int64
	Start         time.Time
	End           time.Time
	Recurrence    *RecurrenceSpec
	TransactionID string
	Reminders     []time.Duration
}

type MeetingUpdate struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Reminders   []time.Duration
}

// MeetingSeries is the persisted series record. Paid series bypass the
// owner's free-plan allotment, so cancelling one must not release slots.
type MeetingSeries struct {
	ID             int64
	OwnerAddress   string
	RecurrenceRule string
	Paid           bool
}

// Meeting is one persisted booking instance. Meetings created from a
// recurrence share a SeriesID and are written or rejected as a unit.
type Meeting struct {
	ID           int64
	SeriesID     int64
	OwnerAddress string
	Participants []string
	Title        string
	Description  string
	Start        time.Time
	End          time.Time
	Reminders    []time.Duration
}

type MeetingsFilter struct {
	From         time.Time
	To           time.Time
	Participants []string
}
