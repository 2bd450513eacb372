package meetings

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/meetwith/scheduler-backend/internal/database"
	"github.com/meetwith/scheduler-backend/internal/model"
)

func (*Repository) GetMeetingByID(ctx context.Context, q database.Queryable, id int64) (*model.Meeting, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &meetingDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToMeeting(dto), nil
}

// GetMeetings returns bookings intersecting the half-open window
// [filter.From, filter.To) that involve any of the filter participants.
func (*Repository) GetMeetings(ctx context.Context, q database.Queryable, filter model.MeetingsFilter) ([]*model.Meeting, error) {
	qb := baseQuery.
		OrderBy("start_time")

	if !filter.To.IsZero() {
		qb = qb.Where(sq.Lt{"start_time": filter.To})
	}
	if !filter.From.IsZero() {
		qb = qb.Where(sq.Gt{"end_time": filter.From})
	}

	if len(filter.Participants) != 0 {
		qb = qb.Where(sq.Expr("participants && ?", filter.Participants))
	}

	var dtos []*meetingDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Meeting, len(dtos))
	for i, d := range dtos {
		res[i] = mapToMeeting(d)
	}

	return res, nil
}

// GetSeriesInfo returns the series record itself, model.ErrNoRecord when it
// does not exist.
func (*Repository) GetSeriesInfo(ctx context.Context, q database.Queryable, seriesID int64) (*model.MeetingSeries, error) {
	qb := database.PSQL.
		Select("id", "owner_address", "recurrence_rule", "paid").
		From(database.MeetingSeriesTable).
		Where(sq.Eq{"id": seriesID})

	series := &model.MeetingSeries{}
	if err := q.Get(ctx, series, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return series, nil
}

// GetSeries returns the instances of a series ordered by start time. The
// result is never empty: a series without instances is model.ErrNoRecord,
// so callers may index the first instance directly.
func (*Repository) GetSeries(ctx context.Context, q database.Queryable, seriesID int64) ([]*model.Meeting, error) {
	qb := baseQuery.
		Where(sq.Eq{"series_id": seriesID}).
		OrderBy("start_time")

	var dtos []*meetingDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	if len(dtos) == 0 {
		return nil, model.ErrNoRecord
	}

	res := make([]*model.Meeting, len(dtos))
	for i, d := range dtos {
		res[i] = mapToMeeting(d)
	}

	return res, nil
}
