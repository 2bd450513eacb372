package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/meetwith/scheduler-backend/internal/model"
	"github.com/meetwith/scheduler-backend/internal/pkg/jwt"
)

type contextKey string

const (
	contextKeyAddress     = contextKey("address")
	contextKeyAccount     = contextKey("account")
	contextKeyMeetingType = contextKey("meeting_type")
)

var errCantRetrieveAddress = errors.New("can't retrieve address")

func (a *Api) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("Authorization")
		if token == "" {
			a.unauthorizedResponse(w, r, errors.New("no token provided"))
			return
		}

		token = strings.TrimPrefix(token, "Bearer ")

		address, err := a.jwts.GetAddressFromToken(token)
		if err != nil {
			invalidTokenErr := &jwt.InvalidTokenError{}
			switch {
			case errors.As(err, &invalidTokenErr):
				a.unauthorizedResponse(w, r, invalidTokenErr)
			default:
				a.serverErrorResponse(w, r, err)
			}
			return
		}

		addressContext := context.WithValue(r.Context(), contextKeyAddress, address)
		next.ServeHTTP(w, r.WithContext(addressContext))
	})
}

func (a *Api) accountCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		address, ok := r.Context().Value(contextKeyAddress).(string)
		if !ok {
			a.serverErrorResponse(w, r, errCantRetrieveAddress)
			return
		}

		account, err := a.accounts.GetAccountByAddress(r.Context(), a.db, address)
		if err != nil {
			switch {
			case errors.Is(err, model.ErrNoRecord):
				a.forbiddenResponse(w, r, "account does not exist")
			default:
				a.serverErrorResponse(w, r, err)
			}
			return
		}

		accountCtx := context.WithValue(r.Context(), contextKeyAccount, account)
		next.ServeHTTP(w, r.WithContext(accountCtx))
	})
}

// meetingTypeCtx resolves {typeID} and rejects access to types the requester
// does not own.
func (a *Api) meetingTypeCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		address, ok := r.Context().Value(contextKeyAddress).(string)
		if !ok {
			a.serverErrorResponse(w, r, errCantRetrieveAddress)
			return
		}

		typeID, err := strconv.ParseInt(chi.URLParam(r, "typeID"), 10, 64)
		if err != nil {
			a.notFoundResponse(w, r)
			return
		}

		meetingType, err := a.meetingTypes.GetMeetingTypeByID(r.Context(), a.db, typeID)
		if err != nil {
			switch {
			case errors.Is(err, model.ErrNoRecord):
				a.notFoundResponse(w, r)
			default:
				a.serverErrorResponse(w, r, err)
			}
			return
		}

		if meetingType.OwnerAddress != address {
			a.notFoundResponse(w, r)
			return
		}

		typeCtx := context.WithValue(r.Context(), contextKeyMeetingType, meetingType)
		next.ServeHTTP(w, r.WithContext(typeCtx))
	})
}
