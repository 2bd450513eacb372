package account

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/meetwith/scheduler-backend/internal/database"
	"github.com/meetwith/scheduler-backend/internal/model"
)

func (*Repository) UpdateAccount(ctx context.Context, q database.Queryable, account *model.Account) error {
	qb := database.PSQL.
		Update(database.AccountsTable).
		SetMap(map[string]interface{}{
			"full_name":    account.FullName,
			"timezone":     account.Timezone,
			"photo":        account.Photo,
			"phone_number": account.PhoneNumber,
			"push_token":   account.PushToken,
			"notify":       account.Notify,
		}).
		Where(sq.Eq{"id": account.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
