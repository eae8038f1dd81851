package auction

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhishekchandaliya/auction-console/pkg/kvstore"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(kvstore.NewMemory())
	cfg := testConfig()
	cfg.SportLimits = map[string]SportLimit{}
	require.NoError(t, e.SetConfig(cfg))
	return e
}

// importSquad loads n unowned LIVE cricketers and returns their ids.
func importSquad(t *testing.T, e *Engine, n int) []int {
	t.Helper()
	var incoming []Player
	for i := 0; i < n; i++ {
		incoming = append(incoming, Player{
			Name:        fmt.Sprintf("Player %d", i+1),
			Ratings:     map[string]string{"Cricket": "A"},
			AuctionType: TypeLive,
		})
	}
	added, merged := e.ImportPlayers(incoming)
	require.Equal(t, n, added)
	require.Equal(t, 0, merged)

	var ids []int
	for _, p := range e.Players() {
		ids = append(ids, p.ID)
	}
	return ids
}

func mustSell(t *testing.T, e *Engine, id int, team string, price int) {
	t.Helper()
	res, err := e.Sell(id, team, price, false)
	require.NoError(t, err)
	require.True(t, res.OK, "sale rejected: %s", res.Reason)
}

func TestSellThenUnsellRoundTrip(t *testing.T) {
	e := newTestEngine(t)
	ids := importSquad(t, e, 3)

	before, err := e.TeamStats("Tigers")
	require.NoError(t, err)

	mustSell(t, e, ids[0], "Tigers", 150)

	sold, err := e.Player(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Tigers", sold.Team)
	assert.Equal(t, 150, sold.Price)
	assert.Equal(t, StatusSold, sold.Status)

	require.NoError(t, e.Unsell(ids[0]))

	released, err := e.Player(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "", released.Team)
	assert.Equal(t, 0, released.Price)
	assert.Equal(t, "", released.CaptainFor)
	assert.Equal(t, StatusAvailable, released.Status)

	after, err := e.TeamStats("Tigers")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUnsellUnownedPlayerIsNoOp(t *testing.T) {
	e := newTestEngine(t)
	ids := importSquad(t, e, 1)

	assert.Empty(t, e.Log.Entries())
	require.NoError(t, e.Unsell(ids[0]))

	// No log entry, no state change.
	assert.Empty(t, e.Log.Entries())
	p, err := e.Player(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "", p.Team)
	assert.Equal(t, StatusAvailable, p.Status)
}

func TestSellRejectsAlreadySoldPlayer(t *testing.T) {
	e := newTestEngine(t)
	ids := importSquad(t, e, 1)

	mustSell(t, e, ids[0], "Tigers", 50)
	_, err := e.Sell(ids[0], "Lions", 60, false)
	assert.Error(t, err)
}

func TestCorrectionBypassesValidation(t *testing.T) {
	e := newTestEngine(t)
	ids := importSquad(t, e, 1)

	// A price far past the purse would never pass the validator.
	require.NoError(t, e.Correct(ids[0], "Tigers", 99999))

	p, err := e.Player(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Tigers", p.Team)
	assert.Equal(t, 99999, p.Price)

	entries := e.Log.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "correction", entries[0].Type)
}

func TestCaptainAssignAndRemove(t *testing.T) {
	e := newTestEngine(t)
	ids := importSquad(t, e, 1)

	require.NoError(t, e.AssignCaptain(ids[0], "Tigers", "Cricket"))

	p, err := e.Player(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Tigers", p.Team)
	assert.Equal(t, "Cricket", p.CaptainFor)
	assert.Equal(t, e.Config().BasePrice, p.Price)
	assert.Equal(t, StatusSold, p.Status)

	require.NoError(t, e.RemoveCaptain(ids[0]))

	p, err = e.Player(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "", p.Team)
	assert.Equal(t, 0, p.Price)
	assert.Equal(t, "", p.CaptainFor)
}

func TestAssignCaptainRequiresRating(t *testing.T) {
	e := newTestEngine(t)
	ids := importSquad(t, e, 1)

	err := e.AssignCaptain(ids[0], "Tigers", "Badminton")
	assert.Error(t, err)
}

func TestImportMergesByCaseInsensitiveName(t *testing.T) {
	e := newTestEngine(t)

	added, merged := e.ImportPlayers([]Player{
		{Name: "Rahul Sharma", Ratings: map[string]string{"Cricket": "A"}},
	})
	require.Equal(t, 1, added)
	require.Equal(t, 0, merged)

	ids := []int{e.Players()[0].ID}
	mustSell(t, e, ids[0], "Tigers", 100)

	added, merged = e.ImportPlayers([]Player{
		{Name: "RAHUL sharma", Ratings: map[string]string{"Cricket": "B"}, Contact: "98765"},
	})
	assert.Equal(t, 0, added)
	assert.Equal(t, 1, merged)

	players := e.Players()
	require.Len(t, players, 1)
	// Ratings and contact refresh, ownership survives the merge.
	assert.Equal(t, "B", players[0].Ratings["Cricket"])
	assert.Equal(t, "98765", players[0].Contact)
	assert.Equal(t, "Tigers", players[0].Team)
	assert.Equal(t, 100, players[0].Price)
}

func TestMarkUnsoldAndReauction(t *testing.T) {
	e := newTestEngine(t)
	ids := importSquad(t, e, 1)

	require.NoError(t, e.MarkUnsold(ids[0]))
	p, err := e.Player(ids[0])
	require.NoError(t, err)
	assert.Equal(t, StatusUnsold, p.Status)

	// An unsold player can still be sold later.
	mustSell(t, e, ids[0], "Tigers", 20)
	p, _ = e.Player(ids[0])
	assert.Equal(t, StatusSold, p.Status)
}

func TestRenameTeamRewritesOwnership(t *testing.T) {
	e := newTestEngine(t)
	ids := importSquad(t, e, 2)
	mustSell(t, e, ids[0], "Tigers", 50)

	require.NoError(t, e.RenameTeam("Tigers", "Panthers"))

	p, err := e.Player(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "Panthers", p.Team)
	assert.Contains(t, e.Teams(), "Panthers")
	assert.NotContains(t, e.Teams(), "Tigers")
}

func TestRemoveTeamReleasesRoster(t *testing.T) {
	e := newTestEngine(t)
	ids := importSquad(t, e, 2)
	mustSell(t, e, ids[0], "Tigers", 50)
	mustSell(t, e, ids[1], "Tigers", 60)

	require.NoError(t, e.RemoveTeam("Tigers"))

	for _, id := range ids {
		p, err := e.Player(id)
		require.NoError(t, err)
		assert.Equal(t, "", p.Team)
		assert.Equal(t, 0, p.Price)
	}
	assert.NotContains(t, e.Teams(), "Tigers")
}

func TestStatePersistsAcrossEngines(t *testing.T) {
	kv := kvstore.NewMemory()

	e1 := NewEngine(kv)
	cfg := testConfig()
	require.NoError(t, e1.SetConfig(cfg))
	ids := importSquad(t, e1, 2)
	mustSell(t, e1, ids[0], "Tigers", 75)

	e2 := NewEngine(kv)
	assert.Equal(t, e1.Players(), e2.Players())
	assert.Equal(t, e1.Config(), e2.Config())

	// IDs keep counting from where the previous run stopped.
	added, _ := e2.ImportPlayers([]Player{{Name: "Late Entry"}})
	require.Equal(t, 1, added)
	players := e2.Players()
	assert.Equal(t, ids[1]+1, players[len(players)-1].ID)
}

func TestCorruptBlobsFallBackToDefaults(t *testing.T) {
	kv := kvstore.NewMemory()
	require.NoError(t, kv.Set("auction_players", "{definitely not json"))
	require.NoError(t, kv.Set("auction_config", "also garbage"))

	e := NewEngine(kv)

	assert.Empty(t, e.Players())
	assert.Equal(t, DefaultConfig().MaxSquadSize, e.Config().MaxSquadSize)
}

func TestConfigMergesOverDefaultsOnLoad(t *testing.T) {
	kv := kvstore.NewMemory()
	// A sparse document from an older run: only the purse is set.
	require.NoError(t, kv.Set("auction_config", `{"purse_limit": 9000, "teams": ["Tigers"]}`))

	e := NewEngine(kv)
	cfg := e.Config()

	assert.Equal(t, 9000, cfg.PurseLimit)
	assert.Equal(t, []string{"Tigers"}, cfg.Teams)
	assert.Equal(t, DefaultConfig().MaxSquadSize, cfg.MaxSquadSize)
	assert.Equal(t, DefaultConfig().BasePrice, cfg.BasePrice)
	assert.NotNil(t, cfg.SportLimits)
	assert.NotNil(t, cfg.FairPlayFloors)
}
