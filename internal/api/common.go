package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/meetwith/scheduler-backend/internal/model"
)

const dateTimeFormat = time.RFC3339

// dateTime is an RFC3339 timestamp in request/response bodies.
type dateTime time.Time

func (d *dateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := time.Parse(dateTimeFormat, s)
	if err != nil {
		return fmt.Errorf("invalid time format: %w", err)
	}

	*d = dateTime(t)
	return nil
}

func (d dateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(dateTimeFormat))
}

// duration is a whole number of minutes in request/response bodies.
type duration time.Duration

func (d *duration) UnmarshalJSON(data []byte) error {
	var minutes int64
	if err := json.Unmarshal(data, &minutes); err != nil {
		return err
	}

	*d = duration(time.Duration(minutes) * time.Minute)
	return nil
}

func (d duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(time.Duration(d) / time.Minute))
}

type accountResp struct {
	Address     string `json:"address"`
	FullName    string `json:"full_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
	Photo       string `json:"photo,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Notify      bool   `json:"notify"`
}

func mapToAccountResp(account *model.Account) (*accountResp, error) {
	return &accountResp{
		Address:     account.Address,
		FullName:    account.FullName,
		Email:       account.Email,
		Timezone:    account.Timezone,
		Photo:       account.Photo,
		PhoneNumber: account.PhoneNumber,
		Notify:      account.Notify,
	}, nil
}

type meetingResp struct {
	ID           int64    `json:"id"`
	SeriesID     int64    `json:"series_id"`
	OwnerAddress string   `json:"owner_address"`
	Participants []string `json:"participants"`
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Start        dateTime `json:"start"`
	End          dateTime `json:"end"`
}

func mapToMeetingResp(m *model.Meeting) (*meetingResp, error) {
	return &meetingResp{
		ID:           m.ID,
		SeriesID:     m.SeriesID,
		OwnerAddress: m.OwnerAddress,
		Participants: m.Participants,
		Title:        m.Title,
		Description:  m.Description,
		Start:        dateTime(m.Start),
		End:          dateTime(m.End),
	}, nil
}

type recurrenceReq struct {
	Frequency string    `json:"frequency"`
	Interval  int       `json:"interval"`
	Count     int       `json:"count,omitempty"`
	Until     *dateTime `json:"until,omitempty"`
	ByWeekday []string  `json:"byweekday,omitempty"`
}

func mapToRecurrenceSpec(req *recurrenceReq) (*model.RecurrenceSpec, error) {
	var freq model.Frequency
	switch req.Frequency {
	case "daily":
		freq = model.FrequencyDaily
	case "weekly":
		freq = model.FrequencyWeekly
	case "monthly":
		freq = model.FrequencyMonthly
	default:
		return nil, fmt.Errorf("unknown frequency %q", req.Frequency)
	}

	spec := &model.RecurrenceSpec{
		Frequency: freq,
		Interval:  req.Interval,
		Count:     req.Count,
		ByWeekday: req.ByWeekday,
	}

	if req.Until != nil {
		t := time.Time(*req.Until)
		spec.Until = &t
	}

	return spec, nil
}
