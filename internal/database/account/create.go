package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/meetwith/scheduler-backend/internal/database"
	"github.com/meetwith/scheduler-backend/internal/model"
)

const uniqueViolation = "23505"

func (*Repository) CreateAccount(ctx context.Context, q database.Queryable, info *model.AccountCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.AccountsTable).
		Columns("address", "full_name", "email", "timezone", "photo", "phone_number", "push_token", "notify").
		Values(info.Address, info.FullName, info.Email, info.Timezone, info.Photo, info.PhoneNumber, info.PushToken, info.Notify).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, model.ErrAlreadyExists
		}
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
