package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/meetwith/scheduler-backend/internal/business/meetings"
	"github.com/meetwith/scheduler-backend/internal/config"
	"github.com/meetwith/scheduler-backend/internal/database"
	"github.com/meetwith/scheduler-backend/internal/model"
	"github.com/meetwith/scheduler-backend/internal/pkg/oauth"
	"github.com/meetwith/scheduler-backend/internal/schedule"
	"go.uber.org/zap"
)

type Api struct {
	handler    http.Handler
	logger     *zap.SugaredLogger
	randSource io.Reader
	conf       *config.Config

	jwts          jwtManager
	tokenParser   tokenParser
	refreshTokens refreshTokenRepository

	db              database.PGX
	accounts        accountRepository
	meetingTypes    meetingTypeRepository
	meetingsService meetingsService
}

type jwtManager interface {
	CreateToken(address string) (string, error)
	GetAddressFromToken(token string) (string, error)
}

type tokenParser interface {
	GetInfoGoogle(ctx context.Context, authCode string) (*oauth.GoogleInfo, error)
}

type refreshTokenRepository interface {
	Add(ctx context.Context, session, address string) error
	Get(ctx context.Context, session string) (string, error)
	Refresh(ctx context.Context, old, new string) error
	Delete(ctx context.Context, session string) error
	DeleteByAddress(ctx context.Context, address string) error
}

type accountRepository interface {
	CreateAccount(ctx context.Context, q database.Queryable, info *model.AccountCreate) (int64, error)
	GetAccountByAddress(ctx context.Context, q database.Queryable, address string) (*model.Account, error)
	GetAccountByEmail(ctx context.Context, q database.Queryable, email string) (*model.Account, error)
	UpdateAccount(ctx context.Context, q database.Queryable, account *model.Account) error
}

type meetingTypeRepository interface {
	CreateMeetingType(ctx context.Context, q database.Queryable, info *model.MeetingTypeCreate) (int64, error)
	GetMeetingTypeByID(ctx context.Context, q database.Queryable, id int64) (*model.MeetingType, error)
	GetMeetingTypes(ctx context.Context, q database.Queryable, ownerAddress string) ([]*model.MeetingType, error)
	UpdateMeetingType(ctx context.Context, q database.Queryable, mt *model.MeetingType) error
	DeleteMeetingType(ctx context.Context, q database.Queryable, id int64) error
}

type meetingsService interface {
	Schedule(ctx context.Context, info *model.MeetingCreate) (*meetings.ScheduledSeries, error)
	Meetings(ctx context.Context, filter model.MeetingsFilter) ([]*model.Meeting, error)
	MeetingByID(ctx context.Context, id int64) (*model.Meeting, error)
	Cancel(ctx context.Context, requester string, seriesID int64) error
	Reschedule(ctx context.Context, requester string, seriesID int64, info *model.MeetingUpdate) ([]*model.Meeting, error)
	BusySlots(ctx context.Context, participants []string, from, to time.Time) ([]schedule.Interval, error)
}

func NewApi(
	logger *zap.SugaredLogger,
	randSource io.Reader,
	conf *config.Config,
	jwts jwtManager,
	tokenParser tokenParser,
	refreshTokens refreshTokenRepository,
	db database.PGX,
	accounts accountRepository,
	meetingTypes meetingTypeRepository,
	meetingsService meetingsService,
) (*Api, error) {
	a := &Api{
		logger:          logger,
		randSource:      randSource,
		conf:            conf,
		jwts:            jwts,
		tokenParser:     tokenParser,
		refreshTokens:   refreshTokens,
		db:              db,
		accounts:        accounts,
		meetingTypes:    meetingTypes,
		meetingsService: meetingsService,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin/google", a.signInGoogleHandler)
		r.Post("/refresh", a.refreshTokenHandler)
		r.Post("/logout", a.logoutHandler)
	})

	r.With(a.auth).Route("/", func(r chi.Router) {
		r.With(a.accountCtx).Route("/account", func(r chi.Router) {
			r.Get("/", a.getAccountHandler)
			r.Put("/", a.updateAccountHandler)
		})
		r.Delete("/sessions", a.logoutEverywhereHandler)

		r.Route("/meetings", func(r chi.Router) {
			r.Post("/", a.scheduleMeetingHandler)
			r.Get("/", a.getMeetingsHandler)
			r.Get("/{meetingID}", a.getMeetingHandler)
			r.Route("/series/{seriesID}", func(r chi.Router) {
				r.Put("/", a.rescheduleMeetingHandler)
				r.Delete("/", a.cancelMeetingHandler)
			})
		})

		r.Route("/meeting-types", func(r chi.Router) {
			r.Post("/", a.createMeetingTypeHandler)
			r.Get("/", a.getMeetingTypesHandler)
			r.Route("/{typeID}", func(r chi.Router) {
				r.Use(a.meetingTypeCtx)
				r.Get("/", a.getMeetingTypeHandler)
				r.Put("/", a.updateMeetingTypeHandler)
				r.Delete("/", a.deleteMeetingTypeHandler)
			})
		})

		r.Get("/calendar/day", a.getCalendarDayHandler)
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
