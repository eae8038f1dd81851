package auction

const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusUnsold    = "unsold"

	TypeLive    = "LIVE"
	TypeLottery = "LOTTERY"

	// NoGrade in a ratings map means the player does not play that sport.
	NoGrade = "0"
)

type Player struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Team        string            `json:"team,omitempty"`
	Price       int               `json:"price"`
	Ratings     map[string]string `json:"ratings"`
	Status      string            `json:"status"`
	AuctionType string            `json:"auction_type"`
	CaptainFor  string            `json:"captain_for,omitempty"`
	Contact     string            `json:"contact,omitempty"`
	Gender      string            `json:"gender,omitempty"`
}

// Grade returns the player's grade for a sport, NoGrade when unrated.
func (p Player) Grade(sport string) string {
	g, ok := p.Ratings[sport]
	if !ok || g == "" {
		return NoGrade
	}
	return g
}

func (p Player) Plays(sport string) bool {
	return p.Grade(sport) != NoGrade
}

type SportLimit struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// TournamentConfig is the whole-document tournament rulebook. It is edited
// and persisted as one blob; there is no per-field versioning.
type TournamentConfig struct {
	PurseLimit   int      `json:"purse_limit"`
	MaxSquadSize int      `json:"max_squad_size"`
	BasePrice    int      `json:"base_price"`
	Teams        []string `json:"teams"`
	Sports       []string `json:"sports"`
	Grades       []string `json:"grades"`
	// SportLimits bounds squad composition per sport. Missing sports
	// default to {0, 999}.
	SportLimits map[string]SportLimit `json:"sport_limits"`
	// FairPlayFloors is the fair-play rule: a team may not go past the
	// floor for a (sport, grade) pair while another team is still below it.
	FairPlayFloors map[string]map[string]int `json:"fair_play_floors"`
}

func DefaultConfig() TournamentConfig {
	return TournamentConfig{
		PurseLimit:     2500,
		MaxSquadSize:   35,
		BasePrice:      10,
		Teams:          []string{},
		Sports:         []string{"Cricket", "Badminton", "Volleyball"},
		Grades:         []string{"A", "B", "C"},
		SportLimits:    map[string]SportLimit{},
		FairPlayFloors: map[string]map[string]int{},
	}
}

// SportLimitFor applies the {0, 999} default for sports the config does
// not bound explicitly.
func (c TournamentConfig) SportLimitFor(sport string) SportLimit {
	if limit, ok := c.SportLimits[sport]; ok {
		return limit
	}
	return SportLimit{Min: 0, Max: 999}
}

func (c TournamentConfig) FairPlayFloor(sport, grade string) int {
	if grades, ok := c.FairPlayFloors[sport]; ok {
		return grades[grade]
	}
	return 0
}

func (c TournamentConfig) HasTeam(name string) bool {
	for _, t := range c.Teams {
		if t == name {
			return true
		}
	}
	return false
}

const (
	SportUnder = "under"
	SportOK    = "ok"
	SportOver  = "over"
)

type SportCount struct {
	Total   int            `json:"total"`
	ByGrade map[string]int `json:"by_grade"`
	Status  string         `json:"status"`
}

type TeamStats struct {
	Team              string                `json:"team"`
	Spend             int                   `json:"spend"`
	PlayerCount       int                   `json:"player_count"`
	Sports            map[string]SportCount `json:"sports"`
	AvailableBalance  int                   `json:"available_balance"`
	DisposableBalance int                   `json:"disposable_balance"`
	Valid             bool                  `json:"valid"`
}

// CheckResult is the outcome of a sale validation. Overridable failures may
// be bypassed by an explicit operator confirmation.
type CheckResult struct {
	OK          bool   `json:"ok"`
	Reason      string `json:"reason,omitempty"`
	Overridable bool   `json:"overridable,omitempty"`
}

func pass() CheckResult {
	return CheckResult{OK: true}
}

func fail(reason string, overridable bool) CheckResult {
	return CheckResult{OK: false, Reason: reason, Overridable: overridable}
}
