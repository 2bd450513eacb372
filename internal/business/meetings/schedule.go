package meetings

import (
	"context"
	"errors"
	"fmt"

	"github.com/meetwith/scheduler-backend/internal/model"
	"github.com/meetwith/scheduler-backend/internal/schedule"
)

// ScheduledSeries is the result of a successful scheduling request: the
// persisted series identifier and every created instance.
type ScheduledSeries struct {
	SeriesID int64
	Meetings []*model.Meeting
}

// Schedule validates a scheduling request, expands its recurrence into
// concrete instances, checks every instance against existing participant
// bookings and persists the whole series in one transaction. Any conflict
// rejects the entire batch; no partial series is ever written.
func (s *Service) Schedule(ctx context.Context, info *model.MeetingCreate) (*ScheduledSeries, error) {
	if len(info.Participants) == 0 {
		return nil, ErrNoParticipants
	}
	if !containsAddress(info.Participants, info.OwnerAddress) {
		return nil, ErrNotParticipant
	}
	if !info.End.After(info.Start) {
		return nil, ErrInvalidTimes
	}

	paid := false
	if info.MeetingTypeID != 0 {
		meetingType, err := s.meetingTypes.GetMeetingTypeByID(ctx, s.db, info.MeetingTypeID)
		if err != nil {
			return nil, fmt.Errorf("get meeting type: %w", err)
		}
		paid = meetingType.Paid

		if meetingType.GateID != "" {
			valid, err := s.gates.IsConditionValid(ctx, meetingType.GateID, info.OwnerAddress)
			if err != nil {
				return nil, fmt.Errorf("check gate condition: %w", err)
			}
			if !valid {
				return nil, model.ErrGateConditionNotValid
			}
		}

		if paid {
			if info.TransactionID == "" {
				return nil, model.ErrTransactionRequired
			}
			verified, err := s.payments.VerifyTransaction(ctx, info.TransactionID)
			if err != nil {
				return nil, fmt.Errorf("verify transaction: %w", err)
			}
			if !verified {
				return nil, model.ErrTransactionRequired
			}
		}
	}

	candidates, rule, err := expand(info)
	if err != nil {
		return nil, err
	}

	if !paid {
		allot, err := s.allotments.GetAllotment(ctx, s.db, info.OwnerAddress)
		if err != nil && !errors.Is(err, model.ErrNoRecord) {
			return nil, fmt.Errorf("get allotment: %w", err)
		}
		used := 0
		limit := s.freeSlotLimit
		if allot != nil {
			used = allot.Used
			if allot.Limit > 0 {
				limit = allot.Limit
			}
		}
		if limit > 0 && used+len(candidates) > limit {
			return nil, model.ErrAllMeetingSlotsUsed
		}
	}

	if err := s.checkConflicts(ctx, candidates, info.Participants, 0); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	seriesID, err := s.meetings.CreateSeries(ctx, tx, &model.MeetingSeries{
		OwnerAddress:   info.OwnerAddress,
		RecurrenceRule: rule,
		Paid:           paid,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMeetingCreation, err)
	}

	for _, c := range candidates {
		c.SeriesID = seriesID
		id, err := s.meetings.CreateMeeting(ctx, tx, c)
		if err != nil {
			if errors.Is(err, model.ErrMeetingChangeConflict) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", model.ErrMeetingCreation, err)
		}
		c.ID = id
	}

	if !paid {
		if err := s.allotments.ConsumeSlots(ctx, tx, info.OwnerAddress, len(candidates), s.freeSlotLimit); err != nil {
			return nil, fmt.Errorf("consume slots: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		if errors.Is(err, model.ErrMeetingChangeConflict) {
			return nil, model.ErrMeetingChangeConflict
		}
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &ScheduledSeries{
		SeriesID: seriesID,
		Meetings: candidates,
	}, nil
}

// checkConflicts verifies that no candidate overlaps an existing participant
// booking or another candidate in the same batch. Bookings belonging to
// excludeSeries are ignored, which lets a reschedule move its own instances.
func (s *Service) checkConflicts(ctx context.Context, candidates []*model.Meeting, participants []string, excludeSeries int64) error {
	window := model.MeetingsFilter{
		From:         candidates[0].Start,
		To:           candidates[0].End,
		Participants: participants,
	}
	for _, c := range candidates {
		if c.Start.Before(window.From) {
			window.From = c.Start
		}
		if c.End.After(window.To) {
			window.To = c.End
		}
	}

	existing, err := s.meetings.GetMeetings(ctx, s.db, window)
	if err != nil {
		return fmt.Errorf("get existing bookings: %w", err)
	}

	busy := make([]schedule.Interval, 0, len(existing))
	for _, m := range existing {
		if excludeSeries != 0 && m.SeriesID == excludeSeries {
			continue
		}
		busy = append(busy, schedule.Interval{Start: m.Start, End: m.End})
	}

	for _, c := range candidates {
		slot := schedule.Interval{Start: c.Start, End: c.End}
		if schedule.OverlapsAny(slot, busy) {
			return model.ErrTimeNotAvailable
		}
		// a conflict inside the batch rejects the batch too
		busy = append(busy, slot)
	}

	return nil
}

func containsAddress(addresses []string, address string) bool {
	for _, a := range addresses {
		if a == address {
			return true
		}
	}
	return false
}
