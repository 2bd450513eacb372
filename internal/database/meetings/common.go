package meetings

import "github.com/meetwith/scheduler-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select("id",
		"series_id",
		"owner_address",
		"participants",
		"title",
		"description",
		"start_time",
		"end_time",
		"reminders",
	).
	From(database.MeetingsTable)
