package auction

// CalculateTeamStats derives a team's spend, squad size, per-sport and
// per-grade counts and both balance figures from the player collection.
// Team stats are never stored, they are recomputed on every refresh.
func CalculateTeamStats(team string, players []Player, cfg TournamentConfig) TeamStats {
	stats := TeamStats{
		Team:   team,
		Sports: make(map[string]SportCount),
		Valid:  true,
	}

	var roster []Player
	for _, p := range players {
		if p.Team == team {
			roster = append(roster, p)
			stats.Spend += p.Price
		}
	}
	stats.PlayerCount = len(roster)

	for _, sport := range cfg.Sports {
		count := SportCount{ByGrade: make(map[string]int)}
		for _, p := range roster {
			if !p.Plays(sport) {
				continue
			}
			count.Total++
			count.ByGrade[p.Grade(sport)]++
		}

		limit := cfg.SportLimitFor(sport)
		switch {
		case count.Total < limit.Min:
			count.Status = SportUnder
			stats.Valid = false
		case count.Total > limit.Max:
			count.Status = SportOver
			stats.Valid = false
		default:
			count.Status = SportOK
		}
		stats.Sports[sport] = count
	}

	stats.AvailableBalance = cfg.PurseLimit - stats.Spend

	// A roster already past the squad cap must not produce a negative
	// reserve that inflates the disposable balance.
	emptySlots := cfg.MaxSquadSize - stats.PlayerCount
	if emptySlots < 0 {
		emptySlots = 0
	}
	stats.DisposableBalance = stats.AvailableBalance - emptySlots*cfg.BasePrice

	return stats
}

// CalculateAllTeamStats computes stats for every registered team.
func CalculateAllTeamStats(players []Player, cfg TournamentConfig) map[string]TeamStats {
	all := make(map[string]TeamStats, len(cfg.Teams))
	for _, team := range cfg.Teams {
		all[team] = CalculateTeamStats(team, players, cfg)
	}
	return all
}
