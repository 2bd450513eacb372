package account

import "github.com/meetwith/scheduler-backend/internal/model"

type accountDTO struct {
	ID          int64
	Address     string
	FullName    string
	Email       string
	Timezone    string
	Photo       string
	PhoneNumber string
	PushToken   string
	Notify      bool
}

func mapToAccount(dto *accountDTO) *model.Account {
	return &model.Account{
		ID: dto.ID,
		AccountCreate: model.AccountCreate{
			Address:     dto.Address,
			FullName:    dto.FullName,
			Email:       dto.Email,
			Timezone:    dto.Timezone,
			Photo:       dto.Photo,
			PhoneNumber: dto.PhoneNumber,
			PushToken:   dto.PushToken,
			Notify:      dto.Notify,
		},
	}
}
