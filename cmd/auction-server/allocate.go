package main

import (
	"net/http"

	"github.com/abhishekchandaliya/auction-console/internals/allocator"
)

// LuckyDraw returns one uniformly drawn player from the filtered pool.
// The pick does not mutate state, selling the winner goes through the
// normal sale flow.
func (app *App) LuckyDraw(w http.ResponseWriter, r *http.Request) {
	var filter allocator.DrawFilter
	if err := getBody(r, &filter); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	winner, err := allocator.LuckyDraw(app.Engine.Players(), filter, app.Rand)
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusNotFound, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: winner})
}

type fillRequestBody struct {
	Team     string             `json:"team"`
	PoolType string             `json:"pool_type"`
	Demands  []allocator.Demand `json:"demands"`
}

func (app *App) PreviewFill(w http.ResponseWriter, r *http.Request) {
	var req fillRequestBody
	if err := getBody(r, &req); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	plan := allocator.TargetedFill(app.Engine.Players(), req.Team, req.PoolType, req.Demands, app.Rand)
	if plan.Matched == 0 {
		sendResponse(w, httpResp{Status: http.StatusNotFound, IsError: true, Error: "no matching players for any demand", Data: plan})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: plan})
}

type confirmFillRequestBody struct {
	Team      string `json:"team"`
	PlayerIDs []int  `json:"player_ids"`
}

func (app *App) ConfirmFill(w http.ResponseWriter, r *http.Request) {
	var req confirmFillRequestBody
	if err := getBody(r, &req); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}
	if len(req.PlayerIDs) == 0 {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "player_ids is required"})
		return
	}

	if err := app.Engine.BulkAssign(req.Team, req.PlayerIDs); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Players assigned successfully", "assigned": len(req.PlayerIDs)}})
}

type distributeRequestBody struct {
	Rounds map[string]int `json:"rounds"`
}

func (app *App) PreviewDistribution(w http.ResponseWriter, r *http.Request) {
	var req distributeRequestBody
	if err := getBody(r, &req); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}

	plan := allocator.Distribute(app.Engine.Players(), app.Engine.Config(), app.Engine.AllTeamStats(), req.Rounds, app.Rand)
	sendResponse(w, httpResp{Status: http.StatusOK, Data: plan})
}

type confirmDistributionRequestBody struct {
	Assignments map[string][]int `json:"assignments"`
}

func (app *App) ConfirmDistribution(w http.ResponseWriter, r *http.Request) {
	var req confirmDistributionRequestBody
	if err := getBody(r, &req); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "Invalid request body"})
		return
	}
	if len(req.Assignments) == 0 {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: "assignments is required"})
		return
	}

	if err := app.Engine.ApplyDistribution(req.Assignments); err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Distribution applied successfully"}})
}

func (app *App) UndoDistribution(w http.ResponseWriter, r *http.Request) {
	released, err := app.Engine.UndoLastDistribution()
	if err != nil {
		sendResponse(w, httpResp{Status: http.StatusBadRequest, IsError: true, Error: err.Error()})
		return
	}
	sendResponse(w, httpResp{Status: http.StatusOK, Data: map[string]interface{}{"message": "Distribution undone", "released": released}})
}
