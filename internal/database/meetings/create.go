package meetings

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/meetwith/scheduler-backend/internal/database"
	"github.com/meetwith/scheduler-backend/internal/model"
)

// SQLSTATE raised by the exclusion constraint guarding participant overlap.
const exclusionViolation = "23P01"

func (*Repository) CreateSeries(ctx context.Context, q database.Queryable, info *model.MeetingSeries) (int64, error) {
	qb := database.PSQL.
		Insert(database.MeetingSeriesTable).
		Columns("owner_address", "recurrence_rule", "paid").
		Values(info.OwnerAddress, info.RecurrenceRule, info.Paid).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}

// CreateMeeting inserts one booking instance. A commit-time exclusion
// violation means another request booked an overlapping slot after our
// conflict check passed; it surfaces as model.ErrMeetingChangeConflict.
func (*Repository) CreateMeeting(ctx context.Context, q database.Queryable, meeting *model.Meeting) (int64, error) {
	qb := database.PSQL.
		Insert(database.MeetingsTable).
		Columns(
			"series_id",
			"owner_address",
			"participants",
			"title",
			"description",
			"start_time",
			"end_time",
			"reminders",
		).
		Values(
			meeting.SeriesID,
			meeting.OwnerAddress,
			meeting.Participants,
			meeting.Title,
			meeting.Description,
			meeting.Start,
			meeting.End,
			mapReminders(meeting.Reminders),
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == exclusionViolation {
			return 0, model.ErrMeetingChangeConflict
		}
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
