package main

import (
	"net/http"
)

type saleRequestBody struct {
	PlayerID int    `json:"player_id"`
	Team     string `json:"team"`
	Price    int    `json:"price"`
	Override bool   `json:"override"`
}

// SellPlayer commits a live-auction sale. A validation failure comes back
// as a 409 carrying the reason and whether an override re-submit would be
// accepted.
func (app *App) SellPlayer(w http.ResponseWriter, r *http.Request) {
	var sale saleRequestBody
	if err := getBody(r, &sale); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	res, err := app.Engine.Sell(sale.PlayerID, sale.Team, sale.Price, sale.Override)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}
	if !res.OK {
		sendResponse(w, httpResp{Status: http.StatusConflict, IsError: true, Error: res.Reason, Data: res})
		return
	}

	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Sale recorded successfully"}})
}

func (app *App) UnsellPlayer(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PlayerID int `json:"player_id"`
	}
	if err := getBody(r, &body); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	if err := app.Engine.Unsell(body.PlayerID); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Sale reverted successfully"}})
}

func (app *App) MarkUnsold(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PlayerID int `json:"player_id"`
	}
	if err := getBody(r, &body); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	if err := app.Engine.MarkUnsold(body.PlayerID); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Player marked unsold"}})
}

func (app *App) CorrectSale(w http.ResponseWriter, r *http.Request) {
	var sale saleRequestBody
	if err := getBody(r, &sale); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	if err := app.Engine.Correct(sale.PlayerID, sale.Team, sale.Price); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Correction applied successfully"}})
}

func (app *App) AssignCaptain(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PlayerID int    `json:"player_id"`
		Team     string `json:"team"`
		Sport    string `json:"sport"`
	}
	if err := getBody(r, &body); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	if err := app.Engine.AssignCaptain(body.PlayerID, body.Team, body.Sport); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Captain assigned successfully"}})
}

func (app *App) RemoveCaptain(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PlayerID int `json:"player_id"`
	}
	if err := getBody(r, &body); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	if err := app.Engine.RemoveCaptain(body.PlayerID); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Captain removed successfully"}})
}
