package meetingtype

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/meetwith/scheduler-backend/internal/database"
	"github.com/meetwith/scheduler-backend/internal/model"
)

func (*Repository) GetMeetingTypeByID(ctx context.Context, q database.Queryable, id int64) (*model.MeetingType, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &meetingTypeDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToMeetingType(dto)
}

func (*Repository) GetMeetingTypes(ctx context.Context, q database.Queryable, ownerAddress string) ([]*model.MeetingType, error) {
	qb := baseQuery.
		Where(sq.Eq{"owner_address": ownerAddress}).
		OrderBy("id")

	var dtos []*meetingTypeDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.MeetingType, len(dtos))
	for i, d := range dtos {
		var err error
		res[i], err = mapToMeetingType(d)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}
