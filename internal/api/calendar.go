package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/meetwith/scheduler-backend/internal/schedule"
)

const dateFormat = "2006-01-02"

type labelRowResp struct {
	Label    string `json:"label"`
	HeightPx int    `json:"height_px"`
}

type busySlotResp struct {
	Start dateTime `json:"start"`
	End   dateTime `json:"end"`
}

// getCalendarDayHandler returns the hourly day-view rows for one date plus
// the busy intervals that produced them.
func (a *Api) getCalendarDayHandler(w http.ResponseWriter, r *http.Request) {
	address, ok := r.Context().Value(contextKeyAddress).(string)
	if !ok {
		a.serverErrorResponse(w, r, errors.New("can't retrieve address from context"))
		return
	}

	dateParam := r.URL.Query().Get("date")
	day, err := time.Parse(dateFormat, dateParam)
	if err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("invalid date %q: %w", dateParam, err))
		return
	}

	loc := time.UTC
	if tzParam := r.URL.Query().Get("timezone"); tzParam != "" {
		loc, err = time.LoadLocation(tzParam)
		if err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("invalid timezone %q: %w", tzParam, err))
			return
		}
	}

	participants := []string{address}
	if p := r.URL.Query().Get("participants"); p != "" {
		participants = strings.Split(p, ",")
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	busy, err := a.meetingsService.BusySlots(r.Context(), participants, dayStart, dayEnd)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	rows := schedule.HourlyLabelRows(dayStart, busy, loc)

	rowsResp := make([]labelRowResp, len(rows))
	for i, row := range rows {
		rowsResp[i] = labelRowResp{Label: row.Label, HeightPx: row.HeightPx}
	}

	busyResp := make([]busySlotResp, len(busy))
	for i, slot := range busy {
		busyResp[i] = busySlotResp{Start: dateTime(slot.Start), End: dateTime(slot.End)}
	}

	if err := a.writeJSON(w, http.StatusOK, &struct {
		Date string         `json:"date"`
		Rows []labelRowResp `json:"rows"`
		Busy []busySlotResp `json:"busy"`
	}{Date: dayStart.Format(dateFormat), Rows: rowsResp, Busy: busyResp}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
