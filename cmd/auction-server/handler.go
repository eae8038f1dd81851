package main

import "net/http"

func (app *App) initHandlers() {
	app.R.Get("/ws", app.handleWebSocket)

	app.R.Post("/auth/login", app.Login)
	app.R.Post("/auth/logout", app.Middleware(http.HandlerFunc(app.Logout)))

	app.R.Get("/players", app.Middleware(http.HandlerFunc(app.GetPlayers)))
	app.R.Post("/players/import", app.Middleware(http.HandlerFunc(app.ImportPlayers)))
	app.R.Put("/players/{id}", app.Middleware(http.HandlerFunc(app.UpdatePlayer)))
	app.R.Delete("/players/{id}", app.Middleware(http.HandlerFunc(app.RemovePlayer)))

	app.R.Get("/teams", app.Middleware(http.HandlerFunc(app.GetTeams)))
	app.R.Get("/teams/stats", app.Middleware(http.HandlerFunc(app.GetTeamStats)))
	app.R.Post("/teams", app.Middleware(http.HandlerFunc(app.AddTeam)))
	app.R.Put("/teams/rename", app.Middleware(http.HandlerFunc(app.RenameTeam)))
	app.R.Delete("/teams/{name}", app.Middleware(http.HandlerFunc(app.RemoveTeam)))

	app.R.Post("/auction/sell", app.Middleware(http.HandlerFunc(app.SellPlayer)))
	app.R.Post("/auction/unsell", app.Middleware(http.HandlerFunc(app.UnsellPlayer)))
	app.R.Post("/auction/unsold", app.Middleware(http.HandlerFunc(app.MarkUnsold)))
	app.R.Post("/auction/correct", app.Middleware(http.HandlerFunc(app.CorrectSale)))
	app.R.Post("/auction/captain", app.Middleware(http.HandlerFunc(app.AssignCaptain)))
	app.R.Delete("/auction/captain", app.Middleware(http.HandlerFunc(app.RemoveCaptain)))

	app.R.Get("/config", app.Middleware(http.HandlerFunc(app.GetConfig)))
	app.R.Put("/config", app.Middleware(http.HandlerFunc(app.PutConfig)))

	app.R.Post("/allocate/luckydraw", app.Middleware(http.HandlerFunc(app.LuckyDraw)))
	app.R.Post("/allocate/fill/preview", app.Middleware(http.HandlerFunc(app.PreviewFill)))
	app.R.Post("/allocate/fill/confirm", app.Middleware(http.HandlerFunc(app.ConfirmFill)))
	app.R.Post("/allocate/distribute/preview", app.Middleware(http.HandlerFunc(app.PreviewDistribution)))
	app.R.Post("/allocate/distribute/confirm", app.Middleware(http.HandlerFunc(app.ConfirmDistribution)))
	app.R.Post("/allocate/distribute/undo", app.Middleware(http.HandlerFunc(app.UndoDistribution)))

	app.R.Get("/activity", app.Middleware(http.HandlerFunc(app.GetActivity)))
	app.R.Get("/export", app.Middleware(http.HandlerFunc(app.Export)))

	app.R.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("I am Healthy"))
	})
}
