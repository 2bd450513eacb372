package meetings

import (
	"context"
	"errors"

	"github.com/meetwith/scheduler-backend/internal/database"
	"github.com/meetwith/scheduler-backend/internal/model"
)

// Validation failures reported before any expansion or storage access.
var ErrNoParticipants = errors.New("participant list must not be empty")
var ErrNotParticipant = errors.New("requester must be among meeting participants")
var ErrInvalidTimes = errors.New("meeting end must be after start")
var ErrNotOwner = errors.New("meeting does not belong to requester")

type Service struct {
	db            database.PGX
	meetings      meetingsRepository
	meetingTypes  meetingTypesRepository
	allotments    allotmentsRepository
	gates         gateValidator
	payments      paymentVerifier
	freeSlotLimit int
}

type meetingsRepository interface {
	CreateSeries(ctx context.Context, q database.Queryable, info *model.MeetingSeries) (int64, error)
	CreateMeeting(ctx context.Context, q database.Queryable, meeting *model.Meeting) (int64, error)
	GetMeetingByID(ctx context.Context, q database.Queryable, id int64) (*model.Meeting, error)
	GetMeetings(ctx context.Context, q database.Queryable, filter model.MeetingsFilter) ([]*model.Meeting, error)
	GetSeriesInfo(ctx context.Context, q database.Queryable, seriesID int64) (*model.MeetingSeries, error)
	GetSeries(ctx context.Context, q database.Queryable, seriesID int64) ([]*model.Meeting, error)
	UpdateMeeting(ctx context.Context, q database.Queryable, meeting *model.Meeting) error
	DeleteSeries(ctx context.Context, q database.Queryable, seriesID int64) error
}

type meetingTypesRepository interface {
	GetMeetingTypeByID(ctx context.Context, q database.Queryable, id int64) (*model.MeetingType, error)
}

type allotmentsRepository interface {
	GetAllotment(ctx context.Context, q database.Queryable, address string) (*model.SlotAllotment, error)
	ConsumeSlots(ctx context.Context, q database.Queryable, address string, count, defaultLimit int) error
	ReleaseSlots(ctx context.Context, q database.Queryable, address string, count int) error
}

type gateValidator interface {
	IsConditionValid(ctx context.Context, gateID, address string) (bool, error)
}

type paymentVerifier interface {
	VerifyTransaction(ctx context.Context, transactionID string) (bool, error)
}

func NewService(
	db database.PGX,
	meetings meetingsRepository,
	meetingTypes meetingTypesRepository,
	allotments allotmentsRepository,
	gates gateValidator,
	payments paymentVerifier,
	freeSlotLimit int,
) *Service {
	return &Service{
		db:            db,
		meetings:      meetings,
		meetingTypes:  meetingTypes,
		allotments:    allotments,
		gates:         gates,
		payments:      payments,
		freeSlotLimit: freeSlotLimit,
	}
}
