package main

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/abhishekchandaliya/auction-console/internals/activity"
)

func (app *App) GetActivity(w http.ResponseWriter, r *http.Request) {
	sendResponse(w, httpResp{Status: http.StatusOK, Data: app.Engine.Log.Entries()})
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleWebSocket registers a read-only event-board viewer. Viewers get
// every activity entry as it happens; they never write.
func (app *App) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Could not open websocket connection", http.StatusBadRequest)
		return
	}

	app.ClientsM.Lock()
	app.WS[conn] = struct{}{}
	app.ClientsM.Unlock()

	defer func() {
		conn.Close()
		app.ClientsM.Lock()
		delete(app.WS, conn)
		app.ClientsM.Unlock()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (app *App) broadcastEntry(entry activity.Entry) {
	app.ClientsM.Lock()
	defer app.ClientsM.Unlock()
	for conn := range app.WS {
		if err := conn.WriteJSON(entry); err != nil {
			conn.Close()
			delete(app.WS, conn)
		}
	}
}
