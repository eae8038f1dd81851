package auction

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/abhishekchandaliya/auction-console/internals/activity"
	"github.com/abhishekchandaliya/auction-console/pkg/kvstore"
)

// Engine owns the auction state: the player collection and the tournament
// config. Every mutation is a single synchronous state transition followed
// by a fire-and-forget persist, so callers never observe a half-applied
// commit.
type Engine struct {
	KV  kvstore.KVStore
	Log *activity.Log

	mu               sync.Mutex
	players          []Player
	config           TournamentConfig
	nextID           int
	lastDistribution []int
}

func NewEngine(kv kvstore.KVStore) *Engine {
	e := &Engine{
		KV:     kv,
		Log:    activity.NewLog(),
		config: DefaultConfig(),
		nextID: 1,
	}
	e.load()
	return e
}

func (e *Engine) findPlayer(id int) *Player {
	for i := range e.players {
		if e.players[i].ID == id {
			return &e.players[i]
		}
	}
	return nil
}

// Players returns a copy of the player collection.
func (e *Engine) Players() []Player {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Player, len(e.players))
	copy(out, e.players)
	return out
}

func (e *Engine) Player(id int) (Player, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p := e.findPlayer(id)
	if p == nil {
		return Player{}, fmt.Errorf("player %d not found", id)
	}
	return *p, nil
}

func (e *Engine) Config() TournamentConfig {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.config
}

// SetConfig overwrites the whole tournament config document. Derived team
// stats pick the change up on the next read.
func (e *Engine) SetConfig(cfg TournamentConfig) error {
	if cfg.MaxSquadSize <= 0 {
		return fmt.Errorf("max squad size must be positive")
	}
	if cfg.BasePrice < 0 || cfg.PurseLimit < 0 {
		return fmt.Errorf("base price and purse limit must not be negative")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.config = cfg
	e.persist()
	return nil
}

func (e *Engine) Teams() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.config.Teams))
	copy(out, e.config.Teams)
	return out
}

func (e *Engine) AddTeam(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("team name must not be empty")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.config.HasTeam(name) {
		return fmt.Errorf("team %q already exists", name)
	}
	e.config.Teams = append(e.config.Teams, name)
	e.persist()
	return nil
}

// RenameTeam renames a team and rewrites ownership on its players.
func (e *Engine) RenameTeam(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("team name must not be empty")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.config.HasTeam(oldName) {
		return fmt.Errorf("team %q not found", oldName)
	}
	if e.config.HasTeam(newName) {
		return fmt.Errorf("team %q already exists", newName)
	}
	for i, t := range e.config.Teams {
		if t == oldName {
			e.config.Teams[i] = newName
		}
	}
	for i := range e.players {
		if e.players[i].Team == oldName {
			e.players[i].Team = newName
		}
	}
	e.persist()
	return nil
}

// RemoveTeam drops a team after releasing its entire roster back to the
// pool.
func (e *Engine) RemoveTeam(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.config.HasTeam(name) {
		return fmt.Errorf("team %q not found", name)
	}
	for i := range e.players {
		if e.players[i].Team == name {
			e.clearOwnership(&e.players[i])
		}
	}
	teams := e.config.Teams[:0]
	for _, t := range e.config.Teams {
		if t != name {
			teams = append(teams, t)
		}
	}
	e.config.Teams = teams
	e.persist()
	return nil
}

func (e *Engine) TeamStats(team string) (TeamStats, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.config.HasTeam(team) {
		return TeamStats{}, fmt.Errorf("team %q not found", team)
	}
	return CalculateTeamStats(team, e.players, e.config), nil
}

func (e *Engine) AllTeamStats() map[string]TeamStats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return CalculateAllTeamStats(e.players, e.config)
}

// ImportPlayers adds a batch of uploaded players. Rows whose name matches
// an existing player case-insensitively merge into that player instead of
// creating a duplicate; ownership and price survive a merge. Returns the
// number of added and merged players.
func (e *Engine) ImportPlayers(incoming []Player) (added, merged int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	byName := make(map[string]int, len(e.players))
	for i := range e.players {
		byName[strings.ToLower(e.players[i].Name)] = i
	}

	for _, in := range incoming {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			continue
		}
		if in.Ratings == nil {
			in.Ratings = map[string]string{}
		}
		if idx, ok := byName[strings.ToLower(name)]; ok {
			existing := &e.players[idx]
			existing.Ratings = in.Ratings
			existing.Contact = in.Contact
			existing.Gender = in.Gender
			if in.AuctionType != "" {
				existing.AuctionType = in.AuctionType
			}
			merged++
			continue
		}
		if in.AuctionType == "" {
			in.AuctionType = TypeLive
		}
		in.ID = e.nextID
		in.Name = name
		in.Team = ""
		in.Price = 0
		in.Status = StatusAvailable
		in.CaptainFor = ""
		e.nextID++
		e.players = append(e.players, in)
		byName[strings.ToLower(name)] = len(e.players) - 1
		added++
	}

	e.persist()
	return added, merged
}

// UpdatePlayer is the explicit edit path for ratings and metadata. It does
// not touch ownership; sales go through Sell/Correct.
func (e *Engine) UpdatePlayer(in Player) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	p := e.findPlayer(in.ID)
	if p == nil {
		return fmt.Errorf("player %d not found", in.ID)
	}
	if strings.TrimSpace(in.Name) != "" {
		p.Name = strings.TrimSpace(in.Name)
	}
	if in.Ratings != nil {
		p.Ratings = in.Ratings
	}
	if in.AuctionType != "" {
		p.AuctionType = in.AuctionType
	}
	p.Contact = in.Contact
	p.Gender = in.Gender
	e.persist()
	return nil
}

func (e *Engine) RemovePlayer(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.players {
		if e.players[i].ID == id {
			e.players = append(e.players[:i], e.players[i+1:]...)
			e.persist()
			return nil
		}
	}
	return fmt.Errorf("player %d not found", id)
}

// Snapshot is the read-only accessor the export layer serializes. Stats
// are listed in team order.
type Snapshot struct {
	Players []Player    `json:"players"`
	Teams   []TeamStats `json:"teams"`
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{Players: make([]Player, len(e.players))}
	copy(snap.Players, e.players)

	stats := CalculateAllTeamStats(e.players, e.config)
	for _, team := range e.config.Teams {
		snap.Teams = append(snap.Teams, stats[team])
	}
	sort.SliceStable(snap.Teams, func(i, j int) bool {
		return snap.Teams[i].Spend > snap.Teams[j].Spend
	})
	return snap
}
