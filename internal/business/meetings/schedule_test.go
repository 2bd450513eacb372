package meetings

import (
	"context"
	"testing"
	"time"

	"github.com/meetwith/scheduler-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meetingCreate(owner string, start, end time.Time) *model.MeetingCreate {
	return &model.MeetingCreate{
		OwnerAddress: owner,
		Participants: []string{owner, "0xguest"},
		Title:        "sync",
		Start:        start,
		End:          end,
	}
}

func TestSchedule_SingleMeeting(t *testing.T) {
	f := newFixture()
	start := time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)

	res, err := f.service.Schedule(context.Background(), meetingCreate("0xabc", start, start.Add(time.Hour)))

	require.NoError(t, err)
	require.Len(t, res.Meetings, 1)
	assert.NotZero(t, res.SeriesID)
	assert.Equal(t, start, res.Meetings[0].Start)
	assert.Equal(t, start.Add(time.Hour), res.Meetings[0].End)
	assert.Len(t, f.meetings.meetings, 1)
}

func TestSchedule_WeeklyRecurrence(t *testing.T) {
	f := newFixture()
	start := time.Date(2024, 1, 29, 10, 0, 0, 0, time.UTC) // a Monday

	info := meetingCreate("0xabc", start, start.Add(time.Hour))
	info.Recurrence = &model.RecurrenceSpec{
		Frequency: model.FrequencyWeekly,
		Interval:  1,
		Count:     5,
	}

	res, err := f.service.Schedule(context.Background(), info)

	require.NoError(t, err)
	require.Len(t, res.Meetings, 5)
	for i, m := range res.Meetings {
		want := start.AddDate(0, 0, 7*i)
		assert.Equal(t, want, m.Start, "instance %d keeps the weekly cadence", i)
		assert.Equal(t, time.Hour, m.End.Sub(m.Start), "instance %d keeps the duration", i)
		assert.Equal(t, res.SeriesID, m.SeriesID)
	}
}

func TestSchedule_ByWeekdayFilter(t *testing.T) {
	f := newFixture()
	start := time.Date(2024, 1, 29, 10, 0, 0, 0, time.UTC) // a Monday

	info := meetingCreate("0xabc", start, start.Add(30*time.Minute))
	info.Recurrence = &model.RecurrenceSpec{
		Frequency: model.FrequencyWeekly,
		Interval:  1,
		Count:     4,
		ByWeekday: []string{"MO", "WE"},
	}

	res, err := f.service.Schedule(context.Background(), info)

	require.NoError(t, err)
	require.Len(t, res.Meetings, 4)
	for _, m := range res.Meetings {
		wd := m.Start.Weekday()
		assert.True(t, wd == time.Monday || wd == time.Wednesday)
		assert.Equal(t, 10, m.Start.Hour())
	}
}

func TestSchedule_UnboundedRecurrenceCapped(t *testing.T) {
	f := newFixture()
	f.service.freeSlotLimit = 0 // no allotment limit for this test
	start := time.Date(2024, 1, 29, 10, 0, 0, 0, time.UTC)

	info := meetingCreate("0xabc", start, start.Add(time.Hour))
	info.Recurrence = &model.RecurrenceSpec{
		Frequency: model.FrequencyDaily,
		Interval:  1,
	}

	res, err := f.service.Schedule(context.Background(), info)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(res.Meetings), 365)
	assert.LessOrEqual(t, len(res.Meetings), 367)
}

func TestSchedule_AtomicConflictRejection(t *testing.T) {
	f := newFixture()

	// existing booking on the series' third occurrence
	existing := time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)
	f.meetings.meetings = append(f.meetings.meetings, &model.Meeting{
		ID:           1,
		SeriesID:     99,
		OwnerAddress: "0xabc",
		Participants: []string{"0xabc"},
		Start:        existing,
		End:          existing.Add(time.Hour),
	})

	start := time.Date(2024, 1, 22, 10, 0, 0, 0, time.UTC)
	info := meetingCreate("0xabc", start, start.Add(time.Hour))
	info.Recurrence = &model.RecurrenceSpec{
		Frequency: model.FrequencyWeekly,
		Interval:  1,
		Count:     5,
	}

	_, err := f.service.Schedule(context.Background(), info)

	assert.ErrorIs(t, err, model.ErrTimeNotAvailable)
	// nothing persisted, not even the non-conflicting occurrences
	assert.Len(t, f.meetings.meetings, 1)
}

func TestSchedule_TouchingSlotsDoNotConflict(t *testing.T) {
	f := newFixture()

	existing := time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)
	f.meetings.meetings = append(f.meetings.meetings, &model.Meeting{
		ID:           1,
		Participants: []string{"0xabc"},
		OwnerAddress: "0xabc",
		Start:        existing,
		End:          existing.Add(time.Hour),
	})

	// back-to-back with the existing booking: [11:00, 12:00) after [10:00, 11:00)
	res, err := f.service.Schedule(context.Background(), meetingCreate("0xabc", existing.Add(time.Hour), existing.Add(2*time.Hour)))

	require.NoError(t, err)
	assert.Len(t, res.Meetings, 1)
}

func TestSchedule_SelfSchedulingGuard(t *testing.T) {
	f := newFixture()
	start := time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)

	info := &model.MeetingCreate{
		OwnerAddress: "0xabc",
		Participants: []string{"0xdef"},
		Title:        "not mine to book",
		Start:        start,
		End:          start.Add(time.Hour),
	}

	_, err := f.service.Schedule(context.Background(), info)

	assert.ErrorIs(t, err, ErrNotParticipant)
	// rejected before any expansion or storage access
	assert.Zero(t, f.meetings.calls)
}

func TestSchedule_EmptyParticipants(t *testing.T) {
	f := newFixture()
	start := time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)

	info := &model.MeetingCreate{
		OwnerAddress: "0xabc",
		Start:        start,
		End:          start.Add(time.Hour),
	}

	_, err := f.service.Schedule(context.Background(), info)

	assert.ErrorIs(t, err, ErrNoParticipants)
	assert.Zero(t, f.meetings.calls)
}

func TestSchedule_GateConditionRejected(t *testing.T) {
	f := newFixture()
	f.gates.valid = false
	f.types.types[7] = &model.MeetingType{
		ID: 7,
		MeetingTypeCreate: model.MeetingTypeCreate{
			OwnerAddress: "0xhost",
			GateID:       "erc721-holder",
		},
	}

	start := time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)
	info := meetingCreate("0xabc", start, start.Add(time.Hour))
	info.MeetingTypeID = 7

	_, err := f.service.Schedule(context.Background(), info)

	assert.ErrorIs(t, err, model.ErrGateConditionNotValid)
	assert.Empty(t, f.meetings.meetings)
}

func TestSchedule_PaidTypeRequiresTransaction(t *testing.T) {
	f := newFixture()
	f.types.types[8] = &model.MeetingType{
		ID: 8,
		MeetingTypeCreate: model.MeetingTypeCreate{
			OwnerAddress: "0xhost",
			Paid:         true,
		},
	}

	start := time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)
	info := meetingCreate("0xabc", start, start.Add(time.Hour))
	info.MeetingTypeID = 8

	_, err := f.service.Schedule(context.Background(), info)
	assert.ErrorIs(t, err, model.ErrTransactionRequired)

	info.TransactionID = "0xdeadbeef"
	f.payments.verified = false
	_, err = f.service.Schedule(context.Background(), info)
	assert.ErrorIs(t, err, model.ErrTransactionRequired)

	f.payments.verified = true
	res, err := f.service.Schedule(context.Background(), info)
	require.NoError(t, err)
	assert.Len(t, res.Meetings, 1)
	// paid bookings do not consume the free allotment
	assert.Zero(t, f.allotments.consumed)
}

func TestCancel_PaidSeriesKeepsAllotment(t *testing.T) {
	f := newFixture()
	f.allotments.allotments["0xabc"] = &model.SlotAllotment{
		AccountAddress: "0xabc",
		Used:           5,
		Limit:          100,
	}
	f.types.types[8] = &model.MeetingType{
		ID: 8,
		MeetingTypeCreate: model.MeetingTypeCreate{
			OwnerAddress: "0xhost",
			Paid:         true,
		},
	}

	start := time.Date(2024, 1, 29, 10, 0, 0, 0, time.UTC)
	info := meetingCreate("0xabc", start, start.Add(time.Hour))
	info.MeetingTypeID = 8
	info.TransactionID = "0xdeadbeef"
	info.Recurrence = &model.RecurrenceSpec{
		Frequency: model.FrequencyWeekly,
		Count:     3,
	}

	res, err := f.service.Schedule(context.Background(), info)
	require.NoError(t, err)
	assert.Equal(t, 5, f.allotments.allotments["0xabc"].Used)

	require.NoError(t, f.service.Cancel(context.Background(), "0xabc", res.SeriesID))
	// the paid series never consumed the allotment, so nothing comes back
	assert.Equal(t, 5, f.allotments.allotments["0xabc"].Used)
}

func TestCancel_FreeSeriesReleasesSlots(t *testing.T) {
	f := newFixture()
	f.allotments.allotments["0xabc"] = &model.SlotAllotment{
		AccountAddress: "0xabc",
		Used:           5,
		Limit:          100,
	}

	start := time.Date(2024, 1, 29, 10, 0, 0, 0, time.UTC)
	series := scheduleWeekly(t, f, "0xabc", start, 3)
	assert.Equal(t, 8, f.allotments.allotments["0xabc"].Used)

	require.NoError(t, f.service.Cancel(context.Background(), "0xabc", series.SeriesID))
	assert.Equal(t, 5, f.allotments.allotments["0xabc"].Used)
}

func TestSchedule_AllotmentExhausted(t *testing.T) {
	f := newFixture()
	f.allotments.allotments["0xabc"] = &model.SlotAllotment{
		AccountAddress: "0xabc",
		Used:           99,
		Limit:          100,
	}

	start := time.Date(2024, 1, 29, 10, 0, 0, 0, time.UTC)
	info := meetingCreate("0xabc", start, start.Add(time.Hour))
	info.Recurrence = &model.RecurrenceSpec{
		Frequency: model.FrequencyWeekly,
		Count:     5,
	}

	_, err := f.service.Schedule(context.Background(), info)

	assert.ErrorIs(t, err, model.ErrAllMeetingSlotsUsed)
	assert.Empty(t, f.meetings.meetings)
}
