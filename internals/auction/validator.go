package auction

import "fmt"

// CanSell checks whether a team may buy a player at the given bid. Checks
// run in order and the first failure wins; the check is pure and mutates
// nothing. The fair-play failure is the only overridable one.
func CanSell(p Player, team string, bid int, cfg TournamentConfig, allStats map[string]TeamStats) CheckResult {
	stats, ok := allStats[team]
	if !ok {
		return fail(fmt.Sprintf("unknown team %q", team), false)
	}

	if stats.PlayerCount >= cfg.MaxSquadSize {
		return fail(fmt.Sprintf("%s already has the maximum squad size of %d", team, cfg.MaxSquadSize), false)
	}

	// The disposable balance reserves the base price for every empty slot,
	// including the one this purchase fills. A bid past it would leave the
	// team unable to fill the rest of its squad at base price.
	if bid > stats.DisposableBalance {
		return fail(fmt.Sprintf("bid %d exceeds %s's disposable balance of %d", bid, team, stats.DisposableBalance), false)
	}

	for _, sport := range cfg.Sports {
		if !p.Plays(sport) {
			continue
		}
		limit := cfg.SportLimitFor(sport)
		if stats.Sports[sport].Total >= limit.Max {
			return fail(fmt.Sprintf("%s already has the maximum of %d %s players", team, limit.Max, sport), false)
		}
	}

	for _, sport := range cfg.Sports {
		if !p.Plays(sport) {
			continue
		}
		grade := p.Grade(sport)
		floor := cfg.FairPlayFloor(sport, grade)
		if floor == 0 || stats.Sports[sport].ByGrade[grade] < floor {
			continue
		}
		// The buyer met the floor. Block only while another team is
		// still short of it.
		for _, other := range cfg.Teams {
			if other == team {
				continue
			}
			if allStats[other].Sports[sport].ByGrade[grade] < floor {
				return fail(fmt.Sprintf("fair play: %s already has %d grade-%s %s players while %s is below the floor of %d",
					team, stats.Sports[sport].ByGrade[grade], grade, sport, other, floor), true)
			}
		}
	}

	return pass()
}
