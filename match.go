package main

// MatchPhase represents the lifecycle of a match
type MatchPhase int

const (
	PhaseLobby     MatchPhase = 0
	PhaseCountdown MatchPhase = 1
	PhasePlaying   MatchPhase = 2
	PhaseResult    MatchPhase = 3
)

// GameMode defines the type of match
type GameMode int

const (
	ModeFFA GameMode = 0
	ModeTDM GameMode = 1
)

// TeamID constants
const (
	TeamNone = 0
	TeamRed  = 1
	TeamBlue = 2
)

const (
	CountdownTime  = 3.0
	ResultTime     = 10.0
	minPlayersToGo = 2
)

// MatchConfig holds settings for a match
type MatchConfig struct {
	Mode       GameMode
	TimeLimit  float64 // seconds, 0 = none
	FragLimit  int     // 0 = none
	MaxPlayers int
}

// DefaultConfig returns default config for the given mode
func DefaultConfig(mode GameMode) MatchConfig {
	switch mode {
	case ModeTDM:
		return MatchConfig{
			Mode:       ModeTDM,
			TimeLimit:  600,
			FragLimit:  50,
			MaxPlayers: 16,
		}
	default:
		return MatchConfig{
			Mode:       ModeFFA,
			TimeLimit:  600,
			FragLimit:  20,
			MaxPlayers: 16,
		}
	}
}

// MatchState holds the current match state
type MatchState struct {
	Phase        MatchPhase
	Config       MatchConfig
	TimeLeft     float64
	CountdownT   float64
	ResultT      float64
	ReadyPlayers map[string]bool
	TeamFrags    [3]int
	WinnerID     string // FFA
	WinnerTeam   int    // TDM
}

// NewMatchState creates a new match state for the given config
func NewMatchState(config MatchConfig) MatchState {
	return MatchState{
		Phase:        PhaseLobby,
		Config:       config,
		TimeLeft:     config.TimeLimit,
		ReadyPlayers: make(map[string]bool),
	}
}

// IsTeamMode returns whether the game mode uses teams
func (c MatchConfig) IsTeamMode() bool {
	return c.Mode == ModeTDM
}

// AssignTeam auto-balances a new player to the smaller team
func (ms *MatchState) AssignTeam(players map[string]*Player) int {
	if !ms.Config.IsTeamMode() {
		return TeamNone
	}
	redCount := 0
	blueCount := 0
	for _, p := range players {
		if p.Team == TeamRed {
			redCount++
		} else if p.Team == TeamBlue {
			blueCount++
		}
	}
	if redCount <= blueCount {
		return TeamRed
	}
	return TeamBlue
}

// LimitReached checks the end conditions. Evaluated at tick boundaries
// only, so a tick's combat always resolves in full before the match
// halts.
func (ms *MatchState) LimitReached(players map[string]*Player) bool {
	if ms.Config.TimeLimit > 0 && ms.TimeLeft <= 0 {
		return true
	}
	if ms.Config.FragLimit <= 0 {
		return false
	}
	if ms.Config.IsTeamMode() {
		return ms.TeamFrags[TeamRed] >= ms.Config.FragLimit ||
			ms.TeamFrags[TeamBlue] >= ms.Config.FragLimit
	}
	for _, p := range players {
		if p.Frags >= ms.Config.FragLimit {
			return true
		}
	}
	return false
}

// DecideWinner records who won when the match ends
func (ms *MatchState) DecideWinner(players map[string]*Player) {
	if ms.Config.IsTeamMode() {
		if ms.TeamFrags[TeamRed] >= ms.TeamFrags[TeamBlue] {
			ms.WinnerTeam = TeamRed
		} else {
			ms.WinnerTeam = TeamBlue
		}
		return
	}
	best := -1
	for _, p := range players {
		if p.Frags > best {
			best = p.Frags
			ms.WinnerID = p.ID
		}
	}
}
