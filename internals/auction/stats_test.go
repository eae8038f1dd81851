package auction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig() TournamentConfig {
	cfg := DefaultConfig()
	cfg.PurseLimit = 2500
	cfg.MaxSquadSize = 35
	cfg.BasePrice = 10
	cfg.Teams = []string{"Tigers", "Lions"}
	cfg.Sports = []string{"Cricket", "Badminton"}
	cfg.SportLimits = map[string]SportLimit{
		"Cricket": {Min: 2, Max: 15},
	}
	return cfg
}

func cricketer(id int, team, grade string, price int) Player {
	status := StatusAvailable
	if team != "" {
		status = StatusSold
	}
	return Player{
		ID:          id,
		Name:        "P" + string(rune('A'+id)),
		Team:        team,
		Price:       price,
		Ratings:     map[string]string{"Cricket": grade, "Badminton": "0"},
		Status:      status,
		AuctionType: TypeLive,
	}
}

func TestCalculateTeamStatsEmptyTeam(t *testing.T) {
	cfg := testConfig()

	stats := CalculateTeamStats("Tigers", nil, cfg)

	assert.Equal(t, 0, stats.Spend)
	assert.Equal(t, 0, stats.PlayerCount)
	assert.Equal(t, 2500, stats.AvailableBalance)
	assert.Equal(t, 2500-35*10, stats.DisposableBalance)
	assert.Equal(t, 0, stats.Sports["Cricket"].Total)
	// Cricket min is 2, an empty team is under.
	assert.Equal(t, SportUnder, stats.Sports["Cricket"].Status)
	assert.False(t, stats.Valid)
}

func TestCalculateTeamStatsCountsAndBalances(t *testing.T) {
	cfg := testConfig()
	players := []Player{
		cricketer(1, "Tigers", "A", 100),
		cricketer(2, "Tigers", "A", 150),
		cricketer(3, "Tigers", "B", 50),
		cricketer(4, "Lions", "A", 400),
		cricketer(5, "", "C", 0),
	}

	stats := CalculateTeamStats("Tigers", players, cfg)

	assert.Equal(t, 300, stats.Spend)
	assert.Equal(t, 3, stats.PlayerCount)
	assert.Equal(t, 3, stats.Sports["Cricket"].Total)
	assert.Equal(t, 2, stats.Sports["Cricket"].ByGrade["A"])
	assert.Equal(t, 1, stats.Sports["Cricket"].ByGrade["B"])
	assert.Equal(t, SportOK, stats.Sports["Cricket"].Status)
	assert.Equal(t, 2500-300, stats.AvailableBalance)
	assert.Equal(t, 2500-300-(35-3)*10, stats.DisposableBalance)
}

func TestCalculateTeamStatsClampsNegativeEmptySlots(t *testing.T) {
	cfg := testConfig()
	cfg.MaxSquadSize = 2
	players := []Player{
		cricketer(1, "Tigers", "A", 100),
		cricketer(2, "Tigers", "A", 100),
		cricketer(3, "Tigers", "B", 100),
	}

	stats := CalculateTeamStats("Tigers", players, cfg)

	// 3 players over a cap of 2: the reserve must clamp to zero, not go
	// negative and inflate the disposable balance.
	assert.Equal(t, stats.AvailableBalance, stats.DisposableBalance)
}

func TestCalculateTeamStatsOverMax(t *testing.T) {
	cfg := testConfig()
	cfg.SportLimits["Cricket"] = SportLimit{Min: 0, Max: 2}
	players := []Player{
		cricketer(1, "Tigers", "A", 10),
		cricketer(2, "Tigers", "B", 10),
		cricketer(3, "Tigers", "C", 10),
	}

	stats := CalculateTeamStats("Tigers", players, cfg)

	assert.Equal(t, SportOver, stats.Sports["Cricket"].Status)
	assert.False(t, stats.Valid)
}

func TestDisposableBalanceInvariantAfterSellUnsell(t *testing.T) {
	e := newTestEngine(t)
	ids := importSquad(t, e, 6)

	check := func() {
		cfg := e.Config()
		for _, team := range cfg.Teams {
			stats, err := e.TeamStats(team)
			assert.NoError(t, err)
			empty := cfg.MaxSquadSize - stats.PlayerCount
			if empty < 0 {
				empty = 0
			}
			assert.Equal(t, cfg.PurseLimit-stats.Spend-empty*cfg.BasePrice, stats.DisposableBalance)
			assert.LessOrEqual(t, stats.DisposableBalance, stats.AvailableBalance)
		}
	}

	check()
	mustSell(t, e, ids[0], "Tigers", 120)
	check()
	mustSell(t, e, ids[1], "Lions", 80)
	check()
	assert.NoError(t, e.Unsell(ids[0]))
	check()
	mustSell(t, e, ids[2], "Tigers", 300)
	check()
}
