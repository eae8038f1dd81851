package allocator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/abhishekchandaliya/auction-console/internals/auction"
)

func sixTeamConfig() auction.TournamentConfig {
	cfg := auction.DefaultConfig()
	cfg.Teams = []string{"T1", "T2", "T3", "T4", "T5", "T6"}
	cfg.Sports = []string{"Cricket", "Badminton"}
	return cfg
}

func emptyStats(cfg auction.TournamentConfig) map[string]auction.TeamStats {
	return auction.CalculateAllTeamStats(nil, cfg)
}

func TestDistributeScarcePoolServesTeamsInOrder(t *testing.T) {
	cfg := sixTeamConfig()
	pool := []auction.Player{
		player(1, "C1", "", auction.TypeLottery, auction.StatusAvailable, map[string]string{"Cricket": "A"}),
		player(2, "C2", "", auction.TypeLottery, auction.StatusAvailable, map[string]string{"Cricket": "B"}),
		player(3, "C3", "", auction.TypeLottery, auction.StatusUnsold, map[string]string{"Cricket": "C"}),
		player(4, "C4", "", auction.TypeLottery, auction.StatusAvailable, map[string]string{"Cricket": "A"}),
		// Owned: must never be assigned.
		player(5, "Taken", "T6", auction.TypeLottery, auction.StatusSold, map[string]string{"Cricket": "A"}),
		// LIVE pool: not eligible for the distributor.
		player(6, "Live", "", auction.TypeLive, auction.StatusAvailable, map[string]string{"Cricket": "A"}),
	}

	plan := Distribute(pool, cfg, emptyStats(cfg), map[string]int{"Cricket": 1}, rand.New(rand.NewSource(11)))

	// Exactly the 4 eligible players go out, one each to the first 4
	// teams in configured order; the last 2 teams get nothing.
	assert.Equal(t, 4, plan.Assigned)
	for _, team := range []string{"T1", "T2", "T3", "T4"} {
		require.Len(t, plan.Assignments[team], 1, "team %s", team)
		assert.Contains(t, []int{1, 2, 3, 4}, plan.Assignments[team][0].ID)
	}
	assert.Empty(t, plan.Assignments["T5"])
	assert.Empty(t, plan.Assignments["T6"])
}

func TestDistributeRespectsSquadCap(t *testing.T) {
	cfg := sixTeamConfig()
	cfg.Teams = []string{"T1"}
	cfg.MaxSquadSize = 2

	var pool []auction.Player
	for i := 1; i <= 5; i++ {
		pool = append(pool, player(i, fmt.Sprintf("C%d", i), "", auction.TypeLottery, auction.StatusAvailable, map[string]string{"Cricket": "A"}))
	}

	plan := Distribute(pool, cfg, emptyStats(cfg), map[string]int{"Cricket": 5}, rand.New(rand.NewSource(2)))

	assert.Equal(t, 2, plan.Assigned)
	assert.Len(t, plan.Assignments["T1"], 2)
}

func TestDistributeRespectsSportMax(t *testing.T) {
	cfg := sixTeamConfig()
	cfg.Teams = []string{"T1"}
	cfg.SportLimits = map[string]auction.SportLimit{
		"Cricket": {Min: 0, Max: 1},
	}

	pool := []auction.Player{
		player(1, "C1", "", auction.TypeLottery, auction.StatusAvailable, map[string]string{"Cricket": "A"}),
		player(2, "C2", "", auction.TypeLottery, auction.StatusAvailable, map[string]string{"Cricket": "B"}),
	}

	plan := Distribute(pool, cfg, emptyStats(cfg), map[string]int{"Cricket": 3}, rand.New(rand.NewSource(5)))

	assert.Equal(t, 1, plan.Assigned)
}

func TestDistributeMultiSportPlayerCountsEverywhere(t *testing.T) {
	cfg := sixTeamConfig()
	cfg.Teams = []string{"T1"}
	cfg.SportLimits = map[string]auction.SportLimit{
		"Badminton": {Min: 0, Max: 1},
	}

	pool := []auction.Player{
		// Rated in both sports: one slot, both counts.
		player(1, "Dual", "", auction.TypeLottery, auction.StatusAvailable, map[string]string{"Cricket": "A", "Badminton": "A"}),
		player(2, "Shuttler", "", auction.TypeLottery, auction.StatusAvailable, map[string]string{"Badminton": "B"}),
	}

	plan := Distribute(pool, cfg, emptyStats(cfg), map[string]int{"Cricket": 1, "Badminton": 1}, rand.New(rand.NewSource(9)))

	// The dual-rated player goes out in the cricket round and fills the
	// badminton quota too, so the badminton round assigns nobody.
	assert.Equal(t, 1, plan.Assigned)
	require.Len(t, plan.Assignments["T1"], 1)
	assert.Equal(t, 1, plan.Assignments["T1"][0].ID)
}

func TestDistributeSeedsSimulationFromRealStats(t *testing.T) {
	cfg := sixTeamConfig()
	cfg.Teams = []string{"T1"}
	cfg.MaxSquadSize = 3

	// Two players already on the roster leave room for exactly one more.
	owned := []auction.Player{
		player(10, "Owned1", "T1", auction.TypeLottery, auction.StatusSold, map[string]string{"Cricket": "A"}),
		player(11, "Owned2", "T1", auction.TypeLottery, auction.StatusSold, map[string]string{"Cricket": "A"}),
	}
	pool := append(owned,
		player(1, "C1", "", auction.TypeLottery, auction.StatusAvailable, map[string]string{"Cricket": "A"}),
		player(2, "C2", "", auction.TypeLottery, auction.StatusAvailable, map[string]string{"Cricket": "A"}),
	)

	stats := auction.CalculateAllTeamStats(pool, cfg)
	plan := Distribute(pool, cfg, stats, map[string]int{"Cricket": 2}, rand.New(rand.NewSource(4)))

	assert.Equal(t, 1, plan.Assigned)
}

func TestDistributeDeterministicForSeed(t *testing.T) {
	cfg := sixTeamConfig()
	var pool []auction.Player
	for i := 1; i <= 12; i++ {
		pool = append(pool, player(i, fmt.Sprintf("C%d", i), "", auction.TypeLottery, auction.StatusAvailable, map[string]string{"Cricket": "A"}))
	}

	a := Distribute(pool, cfg, emptyStats(cfg), map[string]int{"Cricket": 2}, rand.New(rand.NewSource(42)))
	b := Distribute(pool, cfg, emptyStats(cfg), map[string]int{"Cricket": 2}, rand.New(rand.NewSource(42)))

	assert.Equal(t, a.AssignmentIDs(), b.AssignmentIDs())
	assert.Equal(t, 12, a.Assigned)
}
