package meetings

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/meetwith/scheduler-backend/internal/database"
)

func (*Repository) DeleteMeeting(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Delete(database.MeetingsTable).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) DeleteSeries(ctx context.Context, q database.Queryable, seriesID int64) error {
	qb := database.PSQL.
		Delete(database.MeetingsTable).
		Where(sq.Eq{"series_id": seriesID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	sqb := database.PSQL.
		Delete(database.MeetingSeriesTable).
		Where(sq.Eq{"id": seriesID})

	if _, err := q.Exec(ctx, sqb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
