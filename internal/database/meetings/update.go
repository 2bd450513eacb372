package meetings

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
	"github.com/meetwith/scheduler-backend/internal/database"
	"github.com/meetwith/scheduler-backend/internal/model"
)

func (*Repository) UpdateMeeting(ctx context.Context, q database.Queryable, meeting *model.Meeting) error {
	qb := database.PSQL.
		Update(database.MeetingsTable).
		SetMap(map[string]interface{}{
			"title":       meeting.Title,
			"description": meeting.Description,
			"start_time":  meeting.Start,
			"end_time":    meeting.End,
			"reminders":   mapReminders(meeting.Reminders),
		}).
		Where(sq.Eq{"id": meeting.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == exclusionViolation {
			return model.ErrMeetingChangeConflict
		}
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
