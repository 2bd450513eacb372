package allotment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/meetwith/scheduler-backend/internal/database"
	"github.com/meetwith/scheduler-backend/internal/model"
)

// Repository tracks how many paid meeting slots an account has consumed
// against its plan limit.
type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

func (*Repository) GetAllotment(ctx context.Context, q database.Queryable, address string) (*model.SlotAllotment, error) {
	qb := database.PSQL.
		Select("account_address", "used", "slot_limit").
		From(database.AllotmentsTable).
		Where(sq.Eq{"account_address": address})

	dto := &struct {
		AccountAddress string
		Used           int
		SlotLimit      int
	}{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return &model.SlotAllotment{
		AccountAddress: dto.AccountAddress,
		Used:           dto.Used,
		Limit:          dto.SlotLimit,
	}, nil
}

// ConsumeSlots bumps the usage counter, inserting the row on first use.
func (*Repository) ConsumeSlots(ctx context.Context, q database.Queryable, address string, count, defaultLimit int) error {
	qb := database.PSQL.
		Insert(database.AllotmentsTable).
		Columns("account_address", "used", "slot_limit").
		Values(address, count, defaultLimit).
		Suffix("on conflict (account_address) do update set used = slot_allotments.used + ?", count)

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) ReleaseSlots(ctx context.Context, q database.Queryable, address string, count int) error {
	qb := database.PSQL.
		Update(database.AllotmentsTable).
		Set("used", sq.Expr("greatest(used - ?, 0)", count)).
		Where(sq.Eq{"account_address": address})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
