package allocator

import (
	"github.com/abhishekchandaliya/auction-console/internals/auction"
	"golang.org/x/exp/rand"
)

// DrawFilter narrows the lucky-draw pool. Empty Sport means any sport,
// empty Grade means any grade. Source picks between fresh players and the
// previously-unsold pile.
type DrawFilter struct {
	Sport  string `json:"sport"`
	Grade  string `json:"grade"`
	Source string `json:"source"`
}

// LuckyDraw picks one player uniformly at random from the filtered
// eligible set: unowned LIVE players in the requested pool. The spinning
// animation on the console is presentation only; this pick alone decides
// the winner.
func LuckyDraw(players []auction.Player, filter DrawFilter, rng *rand.Rand) (auction.Player, error) {
	wantStatus := auction.StatusAvailable
	if filter.Source == SourceUnsold {
		wantStatus = auction.StatusUnsold
	}

	var eligible []auction.Player
	for _, p := range players {
		if !unowned(p) || p.AuctionType != auction.TypeLive || p.Status != wantStatus {
			continue
		}
		if !matchesFilter(p, filter) {
			continue
		}
		eligible = append(eligible, p)
	}

	if len(eligible) == 0 {
		return auction.Player{}, ErrNoEligiblePlayers
	}
	return eligible[rng.Intn(len(eligible))], nil
}

func matchesFilter(p auction.Player, filter DrawFilter) bool {
	if filter.Sport != "" {
		grade := p.Grade(filter.Sport)
		if grade == auction.NoGrade {
			return false
		}
		return filter.Grade == "" || grade == filter.Grade
	}
	if filter.Grade == "" {
		return true
	}
	for sport := range p.Ratings {
		if p.Grade(sport) == filter.Grade {
			return true
		}
	}
	return false
}
