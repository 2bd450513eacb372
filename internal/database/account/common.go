package account

import "github.com/meetwith/scheduler-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select("id",
		"address",
		"full_name",
		"email",
		"timezone",
		"photo",
		"phone_number",
		"push_token",
		"notify",
	).
	From(database.AccountsTable)
