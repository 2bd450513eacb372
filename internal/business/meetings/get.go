package meetings

import (
	"context"
	"fmt"
	"time"

	"github.com/meetwith/scheduler-backend/internal/model"
	"github.com/meetwith/scheduler-backend/internal/schedule"
)

func (s *Service) Meetings(ctx context.Context, filter model.MeetingsFilter) ([]*model.Meeting, error) {
	res, err := s.meetings.GetMeetings(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("meetings.GetMeetings: %w", err)
	}

	return res, nil
}

func (s *Service) MeetingByID(ctx context.Context, id int64) (*model.Meeting, error) {
	meeting, err := s.meetings.GetMeetingByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("meetings.GetMeetingByID: %w", err)
	}

	return meeting, nil
}

// BusySlots returns the booked intervals of the given participants within
// [from, to), ready for the day-view layout.
func (s *Service) BusySlots(ctx context.Context, participants []string, from, to time.Time) ([]schedule.Interval, error) {
	booked, err := s.meetings.GetMeetings(ctx, s.db, model.MeetingsFilter{
		From:         from,
		To:           to,
		Participants: participants,
	})
	if err != nil {
		return nil, fmt.Errorf("meetings.GetMeetings: %w", err)
	}

	slots := make([]schedule.Interval, len(booked))
	for i, m := range booked {
		slots[i] = schedule.Interval{Start: m.Start, End: m.End}
	}

	return slots, nil
}
