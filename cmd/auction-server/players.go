package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/abhishekchandaliya/auction-console/internals/auction"
)

func (app *App) GetPlayers(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, httpResp{Status: http.StatusOK, Data: app.Engine.Players()})
}

func (app *App) ImportPlayers(w http.ResponseWriter, r *http.Request) {
	var players []auction.Player
	if err := getBody(r, &players); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	added, merged := app.Engine.ImportPlayers(players)
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"added": added, "merged": merged}})
}

func (app *App) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "invalid player id"})
		return
	}

	var player auction.Player
	if err := getBody(r, &player); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}
	player.ID = id

	if err := app.Engine.UpdatePlayer(player); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Player updated successfully"}})
}

func (app *App) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "invalid player id"})
		return
	}

	if err := app.Engine.RemovePlayer(id); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Player removed successfully"}})
}

func (app *App) Export(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, httpResp{Status: http.StatusOK, Data: app.Engine.Snapshot()})
}
