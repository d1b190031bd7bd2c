package main

// Achievement definitions
type AchievementDef struct {
	ID          string
	Name        string
	Description string
}

var Achievements = []AchievementDef{
	{"first_blood", "First Blood", "Get your first frag"},
	{"fragger", "Fragger", "Reach 100 total frags"},
	{"centurion", "Centurion", "Reach 1000 total frags"},
	{"rampage", "Rampage", "Get 15 frags in a single match"},
	{"flawless", "Flawless Victory", "Win a match without dying"},
	{"victor", "Victor", "Win 10 matches"},
	{"humiliator", "Humiliator", "Earn 10 Humiliation awards"},
	{"deadeye", "Deadeye", "Earn 10 Impressive awards"},
	{"veteran", "Veteran", "Reach level 10"},
	{"elite", "Elite", "Reach level 25"},
	{"legend", "Legend", "Reach level 50"},
	{"ironman", "Ironman", "Play for 1 hour total"},
}

// CheckAchievements checks if any new achievements should be unlocked
// for a player after a match. Returns the newly unlocked definitions.
func CheckAchievements(db *DB, playerID int64, matchFrags, matchDeaths int, won bool) []AchievementDef {
	if db == nil {
		return nil
	}

	stats, err := db.GetStats(playerID)
	if err != nil || stats == nil {
		return nil
	}

	existing, err := db.GetAchievements(playerID)
	if err != nil {
		return nil
	}
	has := make(map[string]bool, len(existing))
	for _, a := range existing {
		has[a] = true
	}

	awardCount := func(kind AwardKind) int {
		n, err := db.CountAwards(playerID, kind.String())
		if err != nil {
			return 0
		}
		return n
	}

	var unlocked []AchievementDef

	check := func(id string) bool {
		if has[id] {
			return false
		}
		switch id {
		case "first_blood":
			return stats.Frags >= 1
		case "fragger":
			return stats.Frags >= 100
		case "centurion":
			return stats.Frags >= 1000
		case "rampage":
			return matchFrags >= 15
		case "flawless":
			return won && matchDeaths == 0
		case "victor":
			return stats.Wins >= 10
		case "humiliator":
			return awardCount(AwardHumiliation) >= 10
		case "deadeye":
			return awardCount(AwardImpressive) >= 10
		case "veteran":
			return stats.Level >= 10
		case "elite":
			return stats.Level >= 25
		case "legend":
			return stats.Level >= 50
		case "ironman":
			return stats.Playtime >= 3600
		}
		return false
	}

	for _, def := range Achievements {
		if check(def.ID) {
			if err := db.GrantAchievement(playerID, def.ID); err == nil {
				unlocked = append(unlocked, def)
			}
		}
	}

	return unlocked
}
