package api

import (
	"errors"
	"net/http"

	"github.com/meetwith/scheduler-backend/internal/model"
)

func (a *Api) signInGoogleHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		AuthCode string `json:"auth_code"`
		Address  string `json:"account_address"`
		Timezone string `json:"timezone"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if req.Address == "" {
		a.badRequestResponse(w, r, errors.New("account_address must be provided"))
		return
	}

	tokenInfo, err := a.tokenParser.GetInfoGoogle(r.Context(), req.AuthCode)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	account, err := a.accounts.GetAccountByAddress(r.Context(), a.db, req.Address)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			accountCreate := &model.AccountCreate{
				Address:     req.Address,
				FullName:    tokenInfo.Name,
				Email:       tokenInfo.Email,
				Timezone:    req.Timezone,
				Photo:       tokenInfo.Picture,
				PhoneNumber: tokenInfo.PhoneNumber,
				Notify:      true,
			}
			id, err := a.accounts.CreateAccount(r.Context(), a.db, accountCreate)
			if err != nil {
				a.serverErrorResponse(w, r, err)
				return
			}

			account = &model.Account{ID: id, AccountCreate: *accountCreate}
		} else {
			a.serverErrorResponse(w, r, err)
			return
		}
	}

	tokens, err := a.generateTokens(r.Context(), account.Address)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, tokens, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) refreshTokenHandler(w http.ResponseWriter, r *http.Request) {
	input := &struct {
		RefreshToken string `json:"refresh_token"`
	}{}

	if err := a.readJSON(w, r, input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	address, err := a.refreshTokens.Get(r.Context(), input.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNoRecord):
			a.unauthorizedResponse(w, r, errors.New("no such session"))
		default:
			a.serverErrorResponse(w, r, err)
		}
		return
	}

	accessToken, err := a.jwts.CreateToken(address)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	newRefreshToken := ""
	for {
		newRefreshToken, err = a.generateRandomString(a.conf.SessionTokenLength)
		if err != nil {
			a.serverErrorResponse(w, r, err)
			return
		}

		if err := a.refreshTokens.Refresh(r.Context(), input.RefreshToken, newRefreshToken); err != nil {
			if errors.Is(err, model.ErrAlreadyExists) {
				continue
			}
			a.serverErrorResponse(w, r, err)
			return
		}

		break
	}

	if err := a.writeJSON(w, http.StatusOK, &tokens{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) logoutHandler(w http.ResponseWriter, r *http.Request) {
	input := &struct {
		RefreshToken string `json:"refresh_token"`
	}{}

	if err := a.readJSON(w, r, input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.refreshTokens.Delete(r.Context(), input.RefreshToken); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) logoutEverywhereHandler(w http.ResponseWriter, r *http.Request) {
	address, ok := r.Context().Value(contextKeyAddress).(string)
	if !ok {
		a.serverErrorResponse(w, r, errors.New("can't retrieve address from context"))
		return
	}

	if err := a.refreshTokens.DeleteByAddress(r.Context(), address); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) getAccountHandler(w http.ResponseWriter, r *http.Request) {
	account, ok := r.Context().Value(contextKeyAccount).(*model.Account)
	if !ok {
		a.serverErrorResponse(w, r, errors.New("can't retrieve account from context"))
		return
	}

	resp, err := mapToAccountResp(account)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateAccountHandler(w http.ResponseWriter, r *http.Request) {
	account, ok := r.Context().Value(contextKeyAccount).(*model.Account)
	if !ok {
		a.serverErrorResponse(w, r, errors.New("can't retrieve account from context"))
		return
	}

	req := &struct {
		FullName    *string `json:"full_name"`
		Timezone    *string `json:"timezone"`
		Photo       *string `json:"photo"`
		PhoneNumber *string `json:"phone_number"`
		PushToken   *string `json:"push_token"`
		Notify      *bool   `json:"notify"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if req.FullName != nil {
		account.FullName = *req.FullName
	}
	if req.Timezone != nil {
		account.Timezone = *req.Timezone
	}
	if req.Photo != nil {
		account.Photo = *req.Photo
	}
	if req.PhoneNumber != nil {
		account.PhoneNumber = *req.PhoneNumber
	}
	if req.PushToken != nil {
		account.PushToken = *req.PushToken
	}
	if req.Notify != nil {
		account.Notify = *req.Notify
	}

	if err := a.accounts.UpdateAccount(r.Context(), a.db, account); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	resp, err := mapToAccountResp(account)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
