package main

import (
	"log"

	"github.com/abhishekchandaliya/auction-console/internals/auction"
	"github.com/abhishekchandaliya/auction-console/pkg/kvstore"
)

func failOnError(err error, msg string) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}

func (app *App) initKVStore() {
	app.KV = kvstore.NewRedis(app.Cfg.Redis.Addr, app.Cfg.Redis.Password, app.Cfg.Redis.DB)
}

func (app *App) initEngine() {
	app.Engine = auction.NewEngine(app.KV)
}
