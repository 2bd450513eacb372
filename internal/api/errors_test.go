package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/meetwith/scheduler-backend/internal/business/meetings"
	"github.com/meetwith/scheduler-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestScheduleErrorResponseStatuses(t *testing.T) {
	a := &Api{logger: zap.NewNop().Sugar()}

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"time not available", model.ErrTimeNotAvailable, http.StatusConflict},
		{"creation failure", fmt.Errorf("%w: duplicate key", model.ErrMeetingCreation), http.StatusPreconditionFailed},
		{"gate condition not valid", model.ErrGateConditionNotValid, http.StatusForbidden},
		{"all slots used", model.ErrAllMeetingSlotsUsed, http.StatusPaymentRequired},
		{"transaction required", model.ErrTransactionRequired, http.StatusBadRequest},
		{"change conflict", model.ErrMeetingChangeConflict, http.StatusExpectationFailed},
		{"no participants", meetings.ErrNoParticipants, http.StatusUnprocessableEntity},
		{"requester not participant", meetings.ErrNotParticipant, http.StatusUnprocessableEntity},
		{"invalid times", meetings.ErrInvalidTimes, http.StatusUnprocessableEntity},
		{"not owner", meetings.ErrNotOwner, http.StatusForbidden},
		{"missing series", model.ErrNoRecord, http.StatusNotFound},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/meetings", nil)

			a.scheduleErrorResponse(w, r, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
