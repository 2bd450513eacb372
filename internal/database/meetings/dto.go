package meetings

import (
	"time"

	"github.com/meetwith/scheduler-backend/internal/model"
)

type meetingDTO struct {
	ID           int64
	SeriesID     int64
	OwnerAddress string
	Participants []string
	Title        string
	Description  string
	StartTime    time.Time
	EndTime      time.Time
	Reminders    []int64
}

func mapToMeeting(dto *meetingDTO) *model.Meeting {
	reminders := make([]time.Duration, len(dto.Reminders))
	for i, r := range dto.Reminders {
		reminders[i] = time.Duration(r)
	}

	return &model.Meeting{
		ID:           dto.ID,
		SeriesID:     dto.SeriesID,
		OwnerAddress: dto.OwnerAddress,
		Participants: dto.Participants,
		Title:        dto.Title,
		Description:  dto.Description,
		Start:        dto.StartTime,
		End:          dto.EndTime,
		Reminders:    reminders,
	}
}

func mapReminders(reminders []time.Duration) []int64 {
	res := make([]int64, len(reminders))
	for i, r := range reminders {
		res[i] = int64(r)
	}

	return res
}
