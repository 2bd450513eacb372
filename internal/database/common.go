package database

import (
	sq "github.com/Masterminds/squirrel"
)

// PSQL is the statement builder used by all repositories.
var PSQL = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	AccountsTable      = "accounts"
	MeetingsTable      = "meetings"
	MeetingSeriesTable = "meeting_series"
	MeetingTypesTable  = "meeting_types"
	AllotmentsTable    = "slot_allotments"
)
