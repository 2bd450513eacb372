package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/meetwith/scheduler-backend/internal/business/meetings"
	"github.com/meetwith/scheduler-backend/internal/model"
	"github.com/meetwith/scheduler-backend/internal/pkg/validator"
	"github.com/meetwith/scheduler-backend/internal/schedule"
)

func (a *Api) scheduleMeetingHandler(w http.ResponseWriter, r *http.Request) {
	address, ok := r.Context().Value(contextKeyAddress).(string)
	if !ok {
		a.serverErrorResponse(w, r, errors.New("can't retrieve address from context"))
		return
	}

	req := &struct {
		Participants  []string      `json:"participants"`
		Title         string        `json:"title"`
		Description   string        `json:"description"`
		MeetingTypeID int64         `json:"meeting_type_id"`
		Start         dateTime      `json:"start"`
		End           *dateTime     `json:"end"`
		Recurrence    *recurrenceReq `json:"recurrence"`
		TransactionID string        `json:"transaction_id"`
		Reminders     []duration    `json:"reminders"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(req.Title != "", "title", "must be provided")
	v.Check(len(req.Participants) != 0, "participants", "must not be empty")
	v.Check(req.End != nil || req.MeetingTypeID != 0, "end", "must be provided unless a meeting type is set")
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	info := &model.MeetingCreate{
		OwnerAddress:  address,
		Participants:  req.Participants,
		Title:         req.Title,
		Description:   req.Description,
		MeetingTypeID: req.MeetingTypeID,
		Start:         time.Time(req.Start),
		TransactionID: req.TransactionID,
	}

	for _, rm := range req.Reminders {
		info.Reminders = append(info.Reminders, time.Duration(rm))
	}

	if req.End != nil {
		info.End = time.Time(*req.End)
	} else {
		// derive the end from the meeting type's effective duration
		meetingType, err := a.meetingTypes.GetMeetingTypeByID(r.Context(), a.db, req.MeetingTypeID)
		if err != nil {
			if errors.Is(err, model.ErrNoRecord) {
				a.failedValidationResponse(w, r, map[string]string{"meeting_type_id": "no such meeting type"})
			} else {
				a.serverErrorResponse(w, r, err)
			}
			return
		}
		minutes := schedule.EffectiveDuration(meetingType.Mode, meetingType.DurationMinutes, meetingType.TimeRange)
		info.End = info.Start.Add(time.Duration(minutes) * time.Minute)
	}

	if req.Recurrence != nil {
		spec, err := mapToRecurrenceSpec(req.Recurrence)
		if err != nil {
			a.failedValidationResponse(w, r, map[string]string{"recurrence": err.Error()})
			return
		}
		info.Recurrence = spec
	}

	series, err := a.meetingsService.Schedule(r.Context(), info)
	if err != nil {
		a.scheduleErrorResponse(w, r, err)
		return
	}

	resp, err := mapSlice(series.Meetings, mapToMeetingResp)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, &struct {
		SeriesID int64          `json:"series_id"`
		Meetings []*meetingResp `json:"meetings"`
	}{SeriesID: series.SeriesID, Meetings: resp}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

// scheduleErrorResponse maps business scheduling failures onto HTTP statuses.
func (a *Api) scheduleErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrTimeNotAvailable):
		a.conflictResponse(w, r, "requested time is not available")
	case errors.Is(err, model.ErrMeetingCreation):
		a.preconditionFailedResponse(w, r, "meeting could not be created")
	case errors.Is(err, model.ErrGateConditionNotValid):
		a.forbiddenResponse(w, r, "gate condition is not met")
	case errors.Is(err, model.ErrAllMeetingSlotsUsed):
		a.paymentRequiredResponse(w, r, "all meeting slots are used")
	case errors.Is(err, model.ErrTransactionRequired):
		a.badRequestResponse(w, r, errors.New("a verified transaction is required"))
	case errors.Is(err, model.ErrMeetingChangeConflict):
		a.expectationFailedResponse(w, r, "meeting changed concurrently, please retry")
	case errors.Is(err, meetings.ErrNoParticipants),
		errors.Is(err, meetings.ErrNotParticipant),
		errors.Is(err, meetings.ErrInvalidTimes):
		a.failedValidationResponse(w, r, map[string]string{"meeting": err.Error()})
	case errors.Is(err, meetings.ErrNotOwner):
		a.forbiddenResponse(w, r, err.Error())
	case errors.Is(err, model.ErrNoRecord):
		a.notFoundResponse(w, r)
	default:
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getMeetingsHandler(w http.ResponseWriter, r *http.Request) {
	address, ok := r.Context().Value(contextKeyAddress).(string)
	if !ok {
		a.serverErrorResponse(w, r, errors.New("can't retrieve address from context"))
		return
	}

	filter := model.MeetingsFilter{Participants: []string{address}}

	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		from, err := time.Parse(dateTimeFormat, fromParam)
		if err != nil {
			a.badRequestResponse(w, r, err)
			return
		}
		filter.From = from
	}

	if toParam := r.URL.Query().Get("to"); toParam != "" {
		to, err := time.Parse(dateTimeFormat, toParam)
		if err != nil {
			a.badRequestResponse(w, r, err)
			return
		}
		filter.To = to
	}

	if participants := r.URL.Query().Get("participants"); participants != "" {
		filter.Participants = strings.Split(participants, ",")
	}

	found, err := a.meetingsService.Meetings(r.Context(), filter)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	resp, err := mapSlice(found, mapToMeetingResp)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getMeetingHandler(w http.ResponseWriter, r *http.Request) {
	address, ok := r.Context().Value(contextKeyAddress).(string)
	if !ok {
		a.serverErrorResponse(w, r, errors.New("can't retrieve address from context"))
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "meetingID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	meeting, err := a.meetingsService.MeetingByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
		} else {
			a.serverErrorResponse(w, r, err)
		}
		return
	}

	participant := false
	for _, p := range meeting.Participants {
		if p == address {
			participant = true
			break
		}
	}
	if !participant {
		a.notFoundResponse(w, r)
		return
	}

	resp, err := mapToMeetingResp(meeting)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) rescheduleMeetingHandler(w http.ResponseWriter, r *http.Request) {
	address, ok := r.Context().Value(contextKeyAddress).(string)
	if !ok {
		a.serverErrorResponse(w, r, errors.New("can't retrieve address from context"))
		return
	}

	seriesID, err := strconv.ParseInt(chi.URLParam(r, "seriesID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	req := &struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		Start       dateTime   `json:"start"`
		End         dateTime   `json:"end"`
		Reminders   []duration `json:"reminders"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	info := &model.MeetingUpdate{
		Title:       req.Title,
		Description: req.Description,
		Start:       time.Time(req.Start),
		End:         time.Time(req.End),
	}
	for _, rm := range req.Reminders {
		info.Reminders = append(info.Reminders, time.Duration(rm))
	}

	updated, err := a.meetingsService.Reschedule(r.Context(), address, seriesID, info)
	if err != nil {
		a.scheduleErrorResponse(w, r, err)
		return
	}

	resp, err := mapSlice(updated, mapToMeetingResp)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) cancelMeetingHandler(w http.ResponseWriter, r *http.Request) {
	address, ok := r.Context().Value(contextKeyAddress).(string)
	if !ok {
		a.serverErrorResponse(w, r, errors.New("can't retrieve address from context"))
		return
	}

	seriesID, err := strconv.ParseInt(chi.URLParam(r, "seriesID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	if err := a.meetingsService.Cancel(r.Context(), address, seriesID); err != nil {
		a.scheduleErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
