package allocator

import (
	"github.com/abhishekchandaliya/auction-console/internals/auction"
	"golang.org/x/exp/rand"
)

// Demand is one wishlist line: want Count players rated Grade in Sport.
type Demand struct {
	Sport string `json:"sport"`
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

// FillPlan is a preview batch for one team. Matched may fall short of
// Requested; a plan with zero matches must not be committed.
type FillPlan struct {
	Team      string           `json:"team"`
	Players   []auction.Player `json:"players"`
	Requested int              `json:"requested"`
	Matched   int              `json:"matched"`
}

func (p FillPlan) Shortfall() int {
	return p.Requested - p.Matched
}

func (p FillPlan) PlayerIDs() []int {
	ids := make([]int, len(p.Players))
	for i, player := range p.Players {
		ids[i] = player.ID
	}
	return ids
}

// TargetedFill matches a team's demand list against the unowned players of
// one pool type. Demands expand into unit requests in input order; the
// candidate pool is shuffled once up front, then each unit request claims
// the first unclaimed player with the exact (sport, grade) rating. Unmet
// requests are reported through Requested/Matched, partial fulfillment is
// the caller's call.
func TargetedFill(players []auction.Player, team, poolType string, demands []Demand, rng *rand.Rand) FillPlan {
	plan := FillPlan{Team: team}

	var candidates []auction.Player
	for _, p := range players {
		if unowned(p) && inPool(p) && p.AuctionType == poolType {
			candidates = append(candidates, p)
		}
	}
	candidates = shuffled(candidates, rng)

	used := make(map[int]bool)
	for _, d := range demands {
		for unit := 0; unit < d.Count; unit++ {
			plan.Requested++
			for _, p := range candidates {
				if used[p.ID] || p.Grade(d.Sport) != d.Grade {
					continue
				}
				used[p.ID] = true
				plan.Players = append(plan.Players, p)
				plan.Matched++
				break
			}
		}
	}

	return plan
}
