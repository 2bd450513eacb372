package meetings

import (
	"context"
	"fmt"
)

// Cancel removes a whole series. Slots consumed from the owner's free-plan
// allotment are released; a paid series never consumed any, so none are
// returned for it.
func (s *Service) Cancel(ctx context.Context, requester string, seriesID int64) error {
	series, err := s.meetings.GetSeriesInfo(ctx, s.db, seriesID)
	if err != nil {
		return fmt.Errorf("meetings.GetSeriesInfo: %w", err)
	}

	if series.OwnerAddress != requester {
		return ErrNotOwner
	}

	instances, err := s.meetings.GetSeries(ctx, s.db, seriesID)
	if err != nil {
		return fmt.Errorf("meetings.GetSeries: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := s.meetings.DeleteSeries(ctx, tx, seriesID); err != nil {
		return fmt.Errorf("meetings.DeleteSeries: %w", err)
	}

	if !series.Paid {
		if err := s.allotments.ReleaseSlots(ctx, tx, requester, len(instances)); err != nil {
			return fmt.Errorf("release slots: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}
