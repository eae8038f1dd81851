// Package allocator implements the bulk assignment engines: lucky draw,
// targeted fill and the global distributor. Every engine is a pure function
// of (players, config, request, random source) producing a plan; committing
// a plan is the engine's job in internals/auction. Discarding a plan has no
// side effects.
package allocator

import (
	"errors"

	"github.com/abhishekchandaliya/auction-console/internals/auction"
	"golang.org/x/exp/rand"
)

var ErrNoEligiblePlayers = errors.New("no eligible players in the pool")

// Pool sources for the lucky draw.
const (
	SourceFresh  = "fresh"  // never auctioned yet
	SourceUnsold = "unsold" // passed over earlier, up for re-auction
)

func unowned(p auction.Player) bool {
	return p.Team == ""
}

func inPool(p auction.Player) bool {
	return p.Status == auction.StatusAvailable || p.Status == auction.StatusUnsold
}

// shuffled returns a shuffled copy; the input is never reordered.
func shuffled(players []auction.Player, rng *rand.Rand) []auction.Player {
	out := make([]auction.Player, len(players))
	copy(out, players)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
