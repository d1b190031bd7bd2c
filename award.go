package main

// AwardKind enumerates the in-match awards
type AwardKind int

const (
	AwardExcellent AwardKind = iota
	AwardImpressive
	AwardHumiliation
	AwardPerfect
	AwardAccuracy
)

func (k AwardKind) String() string {
	switch k {
	case AwardExcellent:
		return "Excellent"
	case AwardImpressive:
		return "Impressive"
	case AwardHumiliation:
		return "Humiliation"
	case AwardPerfect:
		return "Perfect"
	case AwardAccuracy:
		return "Accuracy"
	}
	return "Unknown"
}

const (
	ExcellentWindow   = 2.0 // seconds between frags for Excellent
	AccuracyThreshold = 0.8
	AccuracyMinShots  = 10
	awardRetention    = 30.0 // seconds records stay queryable
)

// AwardRecord is an append-only earned-award entry
type AwardRecord struct {
	Kind     AwardKind
	PlayerID string
	Time     float64
}

// AwardTracker detects streak and condition awards over a rolling
// window of combat events. Kill timestamps are kept per player in a
// bounded window pruned by time, never by count.
type AwardTracker struct {
	killTimes   map[string][]float64
	died        map[string]bool
	accuracyHit map[string]bool // Accuracy already granted this match
	Records     []AwardRecord
}

// NewAwardTracker creates an empty tracker
func NewAwardTracker() *AwardTracker {
	return &AwardTracker{
		killTimes:   make(map[string][]float64),
		died:        make(map[string]bool),
		accuracyHit: make(map[string]bool),
	}
}

// Reset clears all per-match state
func (t *AwardTracker) Reset() {
	t.killTimes = make(map[string][]float64)
	t.died = make(map[string]bool)
	t.accuracyHit = make(map[string]bool)
	t.Records = nil
}

// RegisterKill consumes one kill event and returns any awards it
// triggered. Excellent needs two or more frags by the same player
// inside the window; Impressive is a mid-air railgun kill; Humiliation
// is any gauntlet kill.
func (t *AwardTracker) RegisterKill(killerID string, now float64, weapon WeaponKind, victimMidAir bool) []AwardKind {
	var awards []AwardKind

	times := t.killTimes[killerID]
	kept := times[:0]
	for _, ts := range times {
		if now-ts < ExcellentWindow {
			kept = append(kept, ts)
		}
	}
	kept = append(kept, now)
	t.killTimes[killerID] = kept

	if len(kept) >= 2 {
		awards = append(awards, AwardExcellent)
	}
	if weapon == WeaponRailgun && victimMidAir {
		awards = append(awards, AwardImpressive)
	}
	if weapon == WeaponGauntlet {
		awards = append(awards, AwardHumiliation)
	}

	for _, a := range awards {
		t.Records = append(t.Records, AwardRecord{Kind: a, PlayerID: killerID, Time: now})
	}
	return awards
}

// RegisterDeath marks a player as having died, disqualifying Perfect
func (t *AwardTracker) RegisterDeath(playerID string) {
	t.died[playerID] = true
}

// CheckAccuracy evaluates the continuous accuracy condition. Grants at
// most once per player per match.
func (t *AwardTracker) CheckAccuracy(p *Player, now float64) bool {
	if t.accuracyHit[p.ID] || p.ShotsFired < AccuracyMinShots {
		return false
	}
	if float64(p.ShotsHit)/float64(p.ShotsFired) < AccuracyThreshold {
		return false
	}
	t.accuracyHit[p.ID] = true
	t.Records = append(t.Records, AwardRecord{Kind: AwardAccuracy, PlayerID: p.ID, Time: now})
	return true
}

// MatchEnd evaluates end-of-match awards: Perfect for every player who
// finished without dying.
func (t *AwardTracker) MatchEnd(players map[string]*Player, now float64) []AwardRecord {
	var earned []AwardRecord
	for _, p := range players {
		if !t.died[p.ID] {
			rec := AwardRecord{Kind: AwardPerfect, PlayerID: p.ID, Time: now}
			t.Records = append(t.Records, rec)
			earned = append(earned, rec)
		}
	}
	return earned
}

// Prune drops kill timestamps that can no longer contribute to a
// streak and records past the retention horizon
func (t *AwardTracker) Prune(now float64) {
	for id, times := range t.killTimes {
		kept := times[:0]
		for _, ts := range times {
			if now-ts < ExcellentWindow {
				kept = append(kept, ts)
			}
		}
		if len(kept) == 0 {
			delete(t.killTimes, id)
		} else {
			t.killTimes[id] = kept
		}
	}
	for len(t.Records) > 0 && now-t.Records[0].Time > awardRetention {
		t.Records = t.Records[1:]
	}
}
