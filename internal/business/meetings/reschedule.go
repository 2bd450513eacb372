package meetings

import (
	"context"
	"errors"
	"fmt"

	"github.com/meetwith/scheduler-backend/internal/model"
)

// Reschedule moves a series: the update's start/end is applied to the first
// instance and every later instance shifts by the same offset, keeping the
// new duration. The moved instances are conflict-checked against all other
// bookings of the participants before anything is written; a conflict rejects
// the whole move.
func (s *Service) Reschedule(ctx context.Context, requester string, seriesID int64, info *model.MeetingUpdate) ([]*model.Meeting, error) {
	if !info.End.After(info.Start) {
		return nil, ErrInvalidTimes
	}

	instances, err := s.meetings.GetSeries(ctx, s.db, seriesID)
	if err != nil {
		return nil, fmt.Errorf("meetings.GetSeries: %w", err)
	}

	if instances[0].OwnerAddress != requester {
		return nil, ErrNotOwner
	}

	diff := info.Start.Sub(instances[0].Start)
	duration := info.End.Sub(info.Start)

	moved := make([]*model.Meeting, len(instances))
	for i, m := range instances {
		start := m.Start.Add(diff)
		moved[i] = &model.Meeting{
			ID:           m.ID,
			SeriesID:     m.SeriesID,
			OwnerAddress: m.OwnerAddress,
			Participants: m.Participants,
			Title:        info.Title,
			Description:  info.Description,
			Start:        start,
			End:          start.Add(duration),
			Reminders:    info.Reminders,
		}
	}

	if err := s.checkConflicts(ctx, moved, instances[0].Participants, seriesID); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, m := range moved {
		if err := s.meetings.UpdateMeeting(ctx, tx, m); err != nil {
			if errors.Is(err, model.ErrMeetingChangeConflict) {
				return nil, err
			}
			return nil, fmt.Errorf("meetings.UpdateMeeting: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return moved, nil
}
