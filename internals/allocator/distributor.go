package allocator

import (
	"github.com/abhishekchandaliya/auction-console/internals/auction"
	"golang.org/x/exp/rand"
)

// DistributionPlan maps team name to its ordered assignment list. The plan
// is a simulation over copies of the team stats; nothing is committed
// until the operator confirms it.
type DistributionPlan struct {
	Assignments map[string][]auction.Player `json:"assignments"`
	Assigned    int                         `json:"assigned"`
}

func (p DistributionPlan) AssignmentIDs() map[string][]int {
	out := make(map[string][]int, len(p.Assignments))
	for team, players := range p.Assignments {
		ids := make([]int, len(players))
		for i, player := range players {
			ids[i] = player.ID
		}
		out[team] = ids
	}
	return out
}

// Distribute runs the global round-robin allocation over the LOTTERY pool.
// rounds[s] = R means: hand every team R players of sport s. For a fixed
// sport the teams are served round by round in their configured order, so
// an early team cannot exhaust the only candidates before the others get a
// turn. A team with no viable candidate in a round simply receives nothing
// for that slot.
func Distribute(players []auction.Player, cfg auction.TournamentConfig, stats map[string]auction.TeamStats, rounds map[string]int, rng *rand.Rand) DistributionPlan {
	plan := DistributionPlan{Assignments: make(map[string][]auction.Player)}

	var pool []auction.Player
	for _, p := range players {
		if unowned(p) && inPool(p) && p.AuctionType == auction.TypeLottery {
			pool = append(pool, p)
		}
	}
	pool = shuffled(pool, rng)

	// Simulated squad sizes and per-sport counts, seeded from the real
	// stats. A multi-sport player fills one slot but counts for every
	// sport he is rated in.
	squad := make(map[string]int, len(cfg.Teams))
	sportCount := make(map[string]map[string]int, len(cfg.Teams))
	for _, team := range cfg.Teams {
		squad[team] = stats[team].PlayerCount
		counts := make(map[string]int, len(cfg.Sports))
		for _, sport := range cfg.Sports {
			counts[sport] = stats[team].Sports[sport].Total
		}
		sportCount[team] = counts
	}

	for _, sport := range cfg.Sports {
		for round := 0; round < rounds[sport]; round++ {
			for _, team := range cfg.Teams {
				idx := pickFor(pool, team, sport, cfg, squad, sportCount)
				if idx < 0 {
					continue
				}
				p := pool[idx]
				pool = append(pool[:idx], pool[idx+1:]...)

				plan.Assignments[team] = append(plan.Assignments[team], p)
				plan.Assigned++
				squad[team]++
				for _, s := range cfg.Sports {
					if p.Plays(s) {
						sportCount[team][s]++
					}
				}
			}
		}
	}

	return plan
}

func pickFor(pool []auction.Player, team, sport string, cfg auction.TournamentConfig, squad map[string]int, sportCount map[string]map[string]int) int {
	if squad[team]+1 > cfg.MaxSquadSize {
		return -1
	}
	if sportCount[team][sport]+1 > cfg.SportLimitFor(sport).Max {
		return -1
	}
	for i, p := range pool {
		if p.Plays(sport) {
			return i
		}
	}
	return -1
}
