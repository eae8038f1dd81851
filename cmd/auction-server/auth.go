package main

import (
	"net/http"
)

type loginRequestBody struct {
	Password string `json:"password"`
}

func (app *App) Login(w http.ResponseWriter, r *http.Request) {
	var loginDetails loginRequestBody
	err := getBody(r, &loginDetails)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	token, err := app.Auth.Login(loginDetails.Password)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusUnauthorized, IsError: true, Error: err.Error()})
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"token": token, "message": "Logged in successfully"}})
}

func (app *App) Logout(w http.ResponseWriter, r *http.Request) {
	token := r.Context().Value("token").(string)

	if err := app.Auth.RevokeToken(token); err != nil {
		sendResponse(w, httpResp{Status: http.StatusInternalServerError, IsError: true, Error: err.Error()})
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Logged out successfully"}})
}
