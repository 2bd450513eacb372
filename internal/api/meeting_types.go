package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gerow/go-color"
	"github.com/meetwith/scheduler-backend/internal/model"
	"github.com/meetwith/scheduler-backend/internal/pkg/validator"
	"github.com/meetwith/scheduler-backend/internal/schedule"
)

type timeRangeReq struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type meetingTypeReq struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Mode        string        `json:"mode"`
	Duration    string        `json:"duration"`
	TimeRange   *timeRangeReq `json:"time_range"`
	Color       string        `json:"color"`
	GateID      string        `json:"gate_id"`
	Paid        bool          `json:"paid"`
}

type meetingTypeResp struct {
	ID               int64         `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description,omitempty"`
	Mode             string        `json:"mode"`
	DurationMinutes  int           `json:"duration_minutes"`
	EffectiveMinutes int           `json:"effective_minutes"`
	DurationLabel    string        `json:"duration_label"`
	TimeRange        *timeRangeReq `json:"time_range,omitempty"`
	Color            string        `json:"color"`
	GateID           string        `json:"gate_id,omitempty"`
	Paid             bool          `json:"paid"`
}

func mapModeName(mode model.SchedulingMode) string {
	switch mode {
	case model.ModeCustom:
		return "custom"
	case model.ModeTimeRange:
		return "time_range"
	default:
		return "preset"
	}
}

func mapToMeetingTypeResp(mt *model.MeetingType) (*meetingTypeResp, error) {
	effective := schedule.EffectiveDuration(mt.Mode, mt.DurationMinutes, mt.TimeRange)

	resp := &meetingTypeResp{
		ID:               mt.ID,
		Title:            mt.Title,
		Description:      mt.Description,
		Mode:             mapModeName(mt.Mode),
		DurationMinutes:  mt.DurationMinutes,
		EffectiveMinutes: effective,
		DurationLabel:    schedule.DurationLabel(effective),
		Color:            mt.Color.ToHTML(),
		GateID:           mt.GateID,
		Paid:             mt.Paid,
	}

	if mt.TimeRange != nil {
		resp.TimeRange = &timeRangeReq{
			StartTime: mt.TimeRange.StartTime,
			EndTime:   mt.TimeRange.EndTime,
		}
	}

	return resp, nil
}

// parseMeetingTypeReq validates a request body into a MeetingTypeCreate.
// All failures are accumulated in v.
func parseMeetingTypeReq(req *meetingTypeReq, v *validator.Validator) *model.MeetingTypeCreate {
	info := &model.MeetingTypeCreate{
		Title:       req.Title,
		Description: req.Description,
		GateID:      req.GateID,
		Paid:        req.Paid,
	}

	v.Check(req.Title != "", "title", "must be provided")

	switch req.Mode {
	case "", "preset":
		info.Mode = model.ModePreset
	case "custom":
		info.Mode = model.ModeCustom
	case "time_range":
		info.Mode = model.ModeTimeRange
	default:
		v.AddError("mode", fmt.Sprintf("unknown mode %q", req.Mode))
	}

	if info.Mode == model.ModeTimeRange {
		if req.TimeRange == nil {
			v.AddError("time_range", "must be provided for time_range mode")
		} else if schedule.Compare(req.TimeRange.EndTime, req.TimeRange.StartTime) <= 0 {
			v.AddError("time_range", "end must be after start")
		} else {
			info.TimeRange = &model.TimeRange{
				StartTime: req.TimeRange.StartTime,
				EndTime:   req.TimeRange.EndTime,
			}
		}
	}

	minutes, ok := schedule.ParseDuration(req.Duration)
	if !ok && info.Mode != model.ModeTimeRange {
		v.AddError("duration", schedule.FormatCreateLabel(req.Duration))
	}
	info.DurationMinutes = minutes

	if req.Color != "" {
		rgb, err := color.HTMLToRGB(req.Color)
		if err != nil {
			v.AddError("color", "must be a hex color")
		} else {
			info.Color = rgb
		}
	}

	return info
}

func (a *Api) createMeetingTypeHandler(w http.ResponseWriter, r *http.Request) {
	address, ok := r.Context().Value(contextKeyAddress).(string)
	if !ok {
		a.serverErrorResponse(w, r, errors.New("can't retrieve address from context"))
		return
	}

	req := &meetingTypeReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	info := parseMeetingTypeReq(req, v)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}
	info.OwnerAddress = address

	id, err := a.meetingTypes.CreateMeetingType(r.Context(), a.db, info)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	resp, err := mapToMeetingTypeResp(&model.MeetingType{ID: id, MeetingTypeCreate: *info})
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getMeetingTypesHandler(w http.ResponseWriter, r *http.Request) {
	address, ok := r.Context().Value(contextKeyAddress).(string)
	if !ok {
		a.serverErrorResponse(w, r, errors.New("can't retrieve address from context"))
		return
	}

	types, err := a.meetingTypes.GetMeetingTypes(r.Context(), a.db, address)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	resp, err := mapSlice(types, mapToMeetingTypeResp)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getMeetingTypeHandler(w http.ResponseWriter, r *http.Request) {
	meetingType, ok := r.Context().Value(contextKeyMeetingType).(*model.MeetingType)
	if !ok {
		a.serverErrorResponse(w, r, errors.New("can't retrieve meeting type from context"))
		return
	}

	resp, err := mapToMeetingTypeResp(meetingType)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateMeetingTypeHandler(w http.ResponseWriter, r *http.Request) {
	meetingType, ok := r.Context().Value(contextKeyMeetingType).(*model.MeetingType)
	if !ok {
		a.serverErrorResponse(w, r, errors.New("can't retrieve meeting type from context"))
		return
	}

	req := &meetingTypeReq{}
	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	info := parseMeetingTypeReq(req, v)
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}
	info.OwnerAddress = meetingType.OwnerAddress

	updated := &model.MeetingType{ID: meetingType.ID, MeetingTypeCreate: *info}
	if err := a.meetingTypes.UpdateMeetingType(r.Context(), a.db, updated); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	resp, err := mapToMeetingTypeResp(updated)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteMeetingTypeHandler(w http.ResponseWriter, r *http.Request) {
	meetingType, ok := r.Context().Value(contextKeyMeetingType).(*model.MeetingType)
	if !ok {
		a.serverErrorResponse(w, r, errors.New("can't retrieve meeting type from context"))
		return
	}

	if err := a.meetingTypes.DeleteMeetingType(r.Context(), a.db, meetingType.ID); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
