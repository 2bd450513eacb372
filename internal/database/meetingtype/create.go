package meetingtype

import (
	"context"
	"fmt"

	"github.com/meetwith/scheduler-backend/internal/database"
	"github.com/meetwith/scheduler-backend/internal/model"
)

func (*Repository) CreateMeetingType(ctx context.Context, q database.Queryable, info *model.MeetingTypeCreate) (int64, error) {
	rangeStart, rangeEnd := rangeColumns(info.TimeRange)

	qb := database.PSQL.
		Insert(database.MeetingTypesTable).
		Columns(
			"owner_address",
			"title",
			"description",
			"mode",
			"duration_minutes",
			"range_start",
			"range_end",
			"color",
			"gate_id",
			"paid",
		).
		Values(
			info.OwnerAddress,
			info.Title,
			info.Description,
			int(info.Mode),
			info.DurationMinutes,
			rangeStart,
			rangeEnd,
			info.Color.ToHTML(),
			info.GateID,
			info.Paid,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
