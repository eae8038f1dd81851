package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abhishekchandaliya/auction-console/internals/auction"
)

func (app *App) GetTeams(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, httpResp{Status: http.StatusOK, Data: app.Engine.Teams()})
}

func (app *App) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	team := r.URL.Query().Get("team")
	if team == "" {
		sendResponse(w, httpResp{Status: http.StatusOK, Data: app.Engine.AllTeamStats()})
		return
	}

	stats, err := app.Engine.TeamStats(team)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusNotFound, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: stats})
}

func (app *App) AddTeam(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := getBody(r, &body); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	if err := app.Engine.AddTeam(body.Name); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusCreated, Data: map[string]interface{}{"message": "Team created successfully"}})
}

func (app *App) RenameTeam(w http.ResponseWriter, r *http.Request) {
	var body struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := getBody(r, &body); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	if err := app.Engine.RenameTeam(body.From, body.To); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Team renamed successfully"}})
}

func (app *App) RemoveTeam(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := app.Engine.RemoveTeam(name); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Team removed successfully"}})
}

func (app *App) GetConfig(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, httpResp{Status: http.StatusOK, Data: app.Engine.Config()})
}

func (app *App) PutConfig(w http.ResponseWriter, r *http.Request) {
	var cfg auction.TournamentConfig
	if err := getBody(r, &cfg); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	if err := app.Engine.SetConfig(cfg); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Configuration saved successfully"}})
}
