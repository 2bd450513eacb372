package meetingtype

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/meetwith/scheduler-backend/internal/database"
	"github.com/meetwith/scheduler-backend/internal/model"
)

func (*Repository) UpdateMeetingType(ctx context.Context, q database.Queryable, mt *model.MeetingType) error {
	rangeStart, rangeEnd := rangeColumns(mt.TimeRange)

	qb := database.PSQL.
		Update(database.MeetingTypesTable).
		SetMap(map[string]interface{}{
			"title":            mt.Title,
			"description":      mt.Description,
			"mode":             int(mt.Mode),
			"duration_minutes": mt.DurationMinutes,
			"range_start":      rangeStart,
			"range_end":        rangeEnd,
			"color":            mt.Color.ToHTML(),
			"gate_id":          mt.GateID,
			"paid":             mt.Paid,
		}).
		Where(sq.Eq{"id": mt.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) DeleteMeetingType(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Delete(database.MeetingTypesTable).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
