package model

type AccountCreate struct {
	Address     string
	FullName    string
	Email       string
	Timezone    string
	Photo       string
	PhoneNumber string
	PushToken   string
	Notify      bool
}

type Account struct {
	ID int64
	AccountCreate
}
