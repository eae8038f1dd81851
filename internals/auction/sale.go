package auction

import (
	"fmt"

	"github.com/abhishekchandaliya/auction-console/internals/activity"
)

// CanSell is the pure validation entry point for the console: it checks a
// candidate (player, team, bid) without touching state.
func (e *Engine) CanSell(playerID int, team string, bid int) (CheckResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	p := e.findPlayer(playerID)
	if p == nil {
		return CheckResult{}, fmt.Errorf("player %d not found", playerID)
	}
	if p.Team != "" {
		return CheckResult{}, fmt.Errorf("%s is already sold to %s", p.Name, p.Team)
	}
	stats := CalculateAllTeamStats(e.players, e.config)
	return CanSell(*p, team, bid, e.config, stats), nil
}

// Sell commits a live-auction sale. A failed validation is returned as the
// CheckResult, not an error; override skips only overridable failures.
func (e *Engine) Sell(playerID int, team string, bid int, override bool) (CheckResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.findPlayer(playerID)
	if p == nil {
		return CheckResult{}, fmt.Errorf("player %d not found", playerID)
	}
	if p.Team != "" {
		return CheckResult{}, fmt.Errorf("%s is already sold to %s", p.Name, p.Team)
	}

	stats := CalculateAllTeamStats(e.players, e.config)
	res := CanSell(*p, team, bid, e.config, stats)
	if !res.OK && !(override && res.Overridable) {
		return res, nil
	}

	e.applySale(p, team, bid, "")
	e.Log.Append(activity.TypeSale, fmt.Sprintf("%s sold to %s for %d", p.Name, team, bid), map[string]string{
		"player": p.Name,
		"team":   team,
		"price":  fmt.Sprintf("%d", bid),
	})
	e.persist()
	return pass(), nil
}

// Unsell releases a player back to the pool. Unselling an unowned player
// is a no-op: no log entry, no state change.
func (e *Engine) Unsell(playerID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.findPlayer(playerID)
	if p == nil {
		return fmt.Errorf("player %d not found", playerID)
	}
	if p.Team == "" && p.Price == 0 && p.CaptainFor == "" {
		return nil
	}

	team := p.Team
	e.clearOwnership(p)
	e.Log.Append(activity.TypeRevert, fmt.Sprintf("%s reverted from %s", p.Name, team), map[string]string{
		"player": p.Name,
		"team":   team,
	})
	e.persist()
	return nil
}

// MarkUnsold records that a player was passed over at the live auction and
// is eligible for re-auction later.
func (e *Engine) MarkUnsold(playerID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.findPlayer(playerID)
	if p == nil {
		return fmt.Errorf("player %d not found", playerID)
	}
	if p.Team != "" {
		return fmt.Errorf("%s is sold to %s, revert the sale first", p.Name, p.Team)
	}
	p.Status = StatusUnsold
	e.persist()
	return nil
}

// Correct is the administrative override: it overwrites team and price
// with no validation at all. An empty team releases the player.
func (e *Engine) Correct(playerID int, team string, price int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.findPlayer(playerID)
	if p == nil {
		return fmt.Errorf("player %d not found", playerID)
	}
	if team != "" && !e.config.HasTeam(team) {
		return fmt.Errorf("team %q not found", team)
	}

	if team == "" {
		e.clearOwnership(p)
	} else {
		e.applySale(p, team, price, p.CaptainFor)
	}
	e.Log.Append(activity.TypeCorrection, fmt.Sprintf("%s corrected to team=%q price=%d", p.Name, team, price), map[string]string{
		"player": p.Name,
		"team":   team,
		"price":  fmt.Sprintf("%d", price),
	})
	e.persist()
	return nil
}

// AssignCaptain pre-assigns a player as a team's captain for a sport. A
// captain is an ordinary sold player at base price with a side annotation,
// not a parallel ownership path.
func (e *Engine) AssignCaptain(playerID int, team, sport string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.findPlayer(playerID)
	if p == nil {
		return fmt.Errorf("player %d not found", playerID)
	}
	if !e.config.HasTeam(team) {
		return fmt.Errorf("team %q not found", team)
	}
	if p.Team != "" && p.Team != team {
		return fmt.Errorf("%s is already sold to %s", p.Name, p.Team)
	}
	if !p.Plays(sport) {
		return fmt.Errorf("%s is not rated for %s", p.Name, sport)
	}

	price := p.Price
	if p.Team == "" {
		price = e.config.BasePrice
	}
	e.applySale(p, team, price, sport)
	e.Log.Append(activity.TypeCaptain, fmt.Sprintf("%s is now %s's %s captain", p.Name, team, sport), map[string]string{
		"player": p.Name,
		"team":   team,
		"sport":  sport,
	})
	e.persist()
	return nil
}

// RemoveCaptain strips the annotation and releases the player, which is
// ordinary unselling.
func (e *Engine) RemoveCaptain(playerID int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.findPlayer(playerID)
	if p == nil {
		return fmt.Errorf("player %d not found", playerID)
	}
	if p.CaptainFor == "" {
		return fmt.Errorf("%s is not a captain", p.Name)
	}

	team := p.Team
	e.clearOwnership(p)
	e.Log.Append(activity.TypeCaptain, fmt.Sprintf("%s removed as %s's captain", p.Name, team), map[string]string{
		"player": p.Name,
		"team":   team,
	})
	e.persist()
	return nil
}

// BulkAssign commits a targeted-fill batch: every player goes to the team
// at base price through the same sale mutation the live path uses, but
// without budget or category validation. The bypass is deliberate, this is
// an operator-trusted path.
func (e *Engine) BulkAssign(team string, playerIDs []int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.config.HasTeam(team) {
		return fmt.Errorf("team %q not found", team)
	}
	// Validate the whole batch before the first mutation so a commit is
	// all-or-nothing at the decision level.
	for _, id := range playerIDs {
		p := e.findPlayer(id)
		if p == nil {
			return fmt.Errorf("player %d not found", id)
		}
		if p.Team != "" {
			return fmt.Errorf("%s is already sold to %s", p.Name, p.Team)
		}
	}

	for _, id := range playerIDs {
		p := e.findPlayer(id)
		e.applySale(p, team, e.config.BasePrice, "")
		e.Log.Append(activity.TypeSale, fmt.Sprintf("%s assigned to %s for %d", p.Name, team, e.config.BasePrice), map[string]string{
			"player": p.Name,
			"team":   team,
		})
	}
	e.persist()
	return nil
}

// ApplyDistribution commits a distributor preview. Like BulkAssign it
// bypasses the sale validator; the full batch of ids is retained so the
// whole round can be undone at once.
func (e *Engine) ApplyDistribution(assignments map[string][]int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for team, ids := range assignments {
		if !e.config.HasTeam(team) {
			return fmt.Errorf("team %q not found", team)
		}
		for _, id := range ids {
			p := e.findPlayer(id)
			if p == nil {
				return fmt.Errorf("player %d not found", id)
			}
			if p.Team != "" {
				return fmt.Errorf("%s is already sold to %s", p.Name, p.Team)
			}
		}
	}

	var batch []int
	for _, team := range e.config.Teams {
		for _, id := range assignments[team] {
			p := e.findPlayer(id)
			e.applySale(p, team, e.config.BasePrice, "")
			e.Log.Append(activity.TypeSale, fmt.Sprintf("%s assigned to %s for %d", p.Name, team, e.config.BasePrice), map[string]string{
				"player": p.Name,
				"team":   team,
			})
			batch = append(batch, id)
		}
	}
	e.lastDistribution = batch
	e.persist()
	return nil
}

// UndoLastDistribution individually releases every player assigned by the
// most recent committed distribution. Returns how many were released.
func (e *Engine) UndoLastDistribution() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.lastDistribution) == 0 {
		return 0, fmt.Errorf("no distribution to undo")
	}

	released := 0
	for _, id := range e.lastDistribution {
		p := e.findPlayer(id)
		if p == nil || p.Team == "" {
			continue
		}
		team := p.Team
		e.clearOwnership(p)
		e.Log.Append(activity.TypeRevert, fmt.Sprintf("%s reverted from %s", p.Name, team), map[string]string{
			"player": p.Name,
			"team":   team,
		})
		released++
	}
	e.lastDistribution = nil
	e.persist()
	return released, nil
}

func (e *Engine) applySale(p *Player, team string, price int, captainFor string) {
	p.Team = team
	p.Price = price
	p.Status = StatusSold
	p.CaptainFor = captainFor
}

func (e *Engine) clearOwnership(p *Player) {
	p.Team = ""
	p.Price = 0
	p.Status = StatusAvailable
	p.CaptainFor = ""
}
