package auction

import (
	"encoding/json"
	"log"

	"github.com/abhishekchandaliya/auction-console/pkg/kvstore"
)

// The two persisted documents. Each is overwritten wholesale after every
// committed mutation; there is no migration beyond merging the config over
// defaults on load.
const (
	playersKey = "auction_players"
	configKey  = "auction_config"
)

// persist writes both blobs. Write errors are logged and swallowed: the
// in-memory state is the source of truth for the running show and a
// mutation must not fail because the store hiccuped.
func (e *Engine) persist() {
	if data, err := json.Marshal(e.players); err == nil {
		if err := e.KV.Set(playersKey, string(data)); err != nil {
			log.Printf("persist players: %v", err)
		}
	}
	if data, err := json.Marshal(e.config); err == nil {
		if err := e.KV.Set(configKey, string(data)); err != nil {
			log.Printf("persist config: %v", err)
		}
	}
}

// load restores both blobs. A corrupt payload is dropped with a diagnostic
// and the engine starts from defaults/empty state instead of crashing.
func (e *Engine) load() {
	if raw, err := e.KV.Get(playersKey); err == nil {
		var players []Player
		if err := json.Unmarshal([]byte(raw), &players); err != nil {
			log.Printf("ignoring corrupt players blob: %v", err)
		} else {
			e.players = players
		}
	} else if err != kvstore.ErrNotFound {
		log.Printf("load players: %v", err)
	}

	for _, p := range e.players {
		if p.ID >= e.nextID {
			e.nextID = p.ID + 1
		}
	}

	if raw, err := e.KV.Get(configKey); err == nil {
		cfg := DefaultConfig()
		if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
			log.Printf("ignoring corrupt config blob: %v", err)
		} else {
			e.config = mergeConfig(cfg)
		}
	} else if err != kvstore.ErrNotFound {
		log.Printf("load config: %v", err)
	}
}

// mergeConfig backfills fields a persisted document predates.
func mergeConfig(cfg TournamentConfig) TournamentConfig {
	def := DefaultConfig()
	if cfg.MaxSquadSize <= 0 {
		cfg.MaxSquadSize = def.MaxSquadSize
	}
	if cfg.PurseLimit <= 0 {
		cfg.PurseLimit = def.PurseLimit
	}
	if cfg.BasePrice <= 0 {
		cfg.BasePrice = def.BasePrice
	}
	if len(cfg.Sports) == 0 {
		cfg.Sports = def.Sports
	}
	if len(cfg.Grades) == 0 {
		cfg.Grades = def.Grades
	}
	if cfg.Teams == nil {
		cfg.Teams = []string{}
	}
	if cfg.SportLimits == nil {
		cfg.SportLimits = map[string]SportLimit{}
	}
	if cfg.FairPlayFloors == nil {
		cfg.FairPlayFloors = map[string]map[string]int{}
	}
	return cfg
}
