package main

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"golang.org/x/exp/rand"

	"github.com/abhishekchandaliya/auction-console/internals/auction"
	"github.com/abhishekchandaliya/auction-console/internals/auth"
	"github.com/abhishekchandaliya/auction-console/pkg/conf"
	"github.com/abhishekchandaliya/auction-console/pkg/kvstore"
)

type App struct {
	R        *chi.Mux
	KV       kvstore.KVStore
	Engine   *auction.Engine
	Auth     *auth.AuthService
	Cfg      *conf.Config
	Rand     *rand.Rand
	WS       map[*websocket.Conn]struct{}
	ClientsM sync.Mutex
}

func main() {
	cfg, err := conf.Load(".")
	failOnError(err, "Failed to load configuration")

	app := &App{
		Cfg:  cfg,
		Rand: rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		WS:   make(map[*websocket.Conn]struct{}),
	}

	app.initKVStore()
	app.initEngine()
	app.Auth = auth.New(app.KV, cfg.Auth.OperatorPassword, cfg.Auth.JWTSecret)

	r := chi.NewRouter()
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.Server.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler)

	app.R = r
	app.initHandlers()

	// Push every audit entry to the event board.
	app.Engine.Log.Subscribe(app.broadcastEntry)

	if err := http.ListenAndServe(cfg.Server.Addr, r); err != nil {
		panic(err)
	}
}
