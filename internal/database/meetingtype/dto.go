package meetingtype

import (
	"fmt"

	"github.com/gerow/go-color"
	"github.com/meetwith/scheduler-backend/internal/model"
)

type meetingTypeDTO struct {
	ID              int64
	OwnerAddress    string
	Title           string
	Description     string
	Mode            int
	DurationMinutes int
	RangeStart      *string
	RangeEnd        *string
	Color           string
	GateID          string
	Paid            bool
}

func mapToMeetingType(dto *meetingTypeDTO) (*model.MeetingType, error) {
	rgb, err := color.HTMLToRGB(dto.Color)
	if err != nil {
		return nil, fmt.Errorf("parse color %q: %w", dto.Color, err)
	}

	var timeRange *model.TimeRange
	if dto.RangeStart != nil && dto.RangeEnd != nil {
		timeRange = &model.TimeRange{
			StartTime: *dto.RangeStart,
			EndTime:   *dto.RangeEnd,
		}
	}

	return &model.MeetingType{
		ID: dto.ID,
		MeetingTypeCreate: model.MeetingTypeCreate{
			OwnerAddress:    dto.OwnerAddress,
			Title:           dto.Title,
			Description:     dto.Description,
			Mode:            model.SchedulingMode(dto.Mode),
			DurationMinutes: dto.DurationMinutes,
			TimeRange:       timeRange,
			Color:           rgb,
			GateID:          dto.GateID,
			Paid:            dto.Paid,
		},
	}, nil
}

func rangeColumns(timeRange *model.TimeRange) (start, end *string) {
	if timeRange == nil {
		return nil, nil
	}
	return &timeRange.StartTime, &timeRange.EndTime
}
