package meetingtype

import "github.com/meetwith/scheduler-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select("id",
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
	From(database.MeetingTypesTable)
