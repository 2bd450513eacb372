package account

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/meetwith/scheduler-backend/internal/database"
	"github.com/meetwith/scheduler-backend/internal/model"
)

func (*Repository) GetAccountByAddress(ctx context.Context, q database.Queryable, address string) (*model.Account, error) {
	qb := baseQuery.
		Where(sq.Eq{"address": address})

	dto := &accountDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToAccount(dto), nil
}

func (*Repository) GetAccountByEmail(ctx context.Context, q database.Queryable, email string) (*model.Account, error) {
	qb := baseQuery.
		Where(sq.Eq{"email": email})

	dto := &accountDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToAccount(dto), nil
}

func (*Repository) GetAccountsByAddresses(ctx context.Context, q database.Queryable, addresses []string) ([]*model.Account, error) {
	qb := baseQuery.
		Where(sq.Eq{"address": addresses})

	var dtos []*accountDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Account, len(dtos))
	for i, d := range dtos {
		res[i] = mapToAccount(d)
	}

	return res, nil
}
