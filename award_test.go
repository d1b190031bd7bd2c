package main

import "testing"

func TestExcellentWithinWindow(t *testing.T) {
	tr := NewAwardTracker()

	awards := tr.RegisterKill("a", 10.0, WeaponRocketLauncher, false)
	if len(awards) != 0 {
		t.Error("single kill should earn nothing")
	}

	awards = tr.RegisterKill("a", 11.5, WeaponRocketLauncher, false)
	if len(awards) != 1 || awards[0] != AwardExcellent {
		t.Errorf("two kills 1.5s apart should earn Excellent, got %v", awards)
	}
}

func TestExcellentWindowExpires(t *testing.T) {
	tr := NewAwardTracker()

	tr.RegisterKill("a", 10.0, WeaponRocketLauncher, false)
	awards := tr.RegisterKill("a", 13.0, WeaponRocketLauncher, false)
	if len(awards) != 0 {
		t.Errorf("kills 3s apart should not earn Excellent, got %v", awards)
	}
}

func TestExcellentPerPlayer(t *testing.T) {
	tr := NewAwardTracker()

	tr.RegisterKill("a", 10.0, WeaponRocketLauncher, false)
	awards := tr.RegisterKill("b", 10.5, WeaponRocketLauncher, false)
	if len(awards) != 0 {
		t.Error("kills by different players must not combine into Excellent")
	}
}

func TestImpressiveMidairRail(t *testing.T) {
	tr := NewAwardTracker()

	awards := tr.RegisterKill("a", 10.0, WeaponRailgun, true)
	if len(awards) != 1 || awards[0] != AwardImpressive {
		t.Errorf("mid-air railgun kill should earn Impressive, got %v", awards)
	}

	awards = tr.RegisterKill("b", 10.0, WeaponRailgun, false)
	if len(awards) != 0 {
		t.Error("grounded railgun kill should not earn Impressive")
	}

	awards = tr.RegisterKill("c", 10.0, WeaponRocketLauncher, true)
	if len(awards) != 0 {
		t.Error("mid-air rocket kill should not earn Impressive")
	}
}

func TestHumiliationGauntlet(t *testing.T) {
	tr := NewAwardTracker()

	awards := tr.RegisterKill("a", 10.0, WeaponGauntlet, false)
	if len(awards) != 1 || awards[0] != AwardHumiliation {
		t.Errorf("gauntlet kill should earn Humiliation, got %v", awards)
	}
}

func TestAccuracyAward(t *testing.T) {
	tr := NewAwardTracker()
	p := testPlayer("p")

	p.ShotsFired = 5
	p.ShotsHit = 5
	if tr.CheckAccuracy(p, 10) {
		t.Error("under the minimum shot count no award is possible")
	}

	p.ShotsFired = 10
	p.ShotsHit = 7
	if tr.CheckAccuracy(p, 10) {
		t.Error("70 percent accuracy is below the threshold")
	}

	p.ShotsHit = 8
	if !tr.CheckAccuracy(p, 10) {
		t.Error("80 percent over 10 shots should earn the award")
	}
	if tr.CheckAccuracy(p, 11) {
		t.Error("accuracy award is granted at most once per match")
	}
}

func TestPerfectAward(t *testing.T) {
	tr := NewAwardTracker()
	players := map[string]*Player{
		"a": testPlayer("a"),
		"b": testPlayer("b"),
	}
	tr.RegisterDeath("b")

	earned := tr.MatchEnd(players, 300)
	if len(earned) != 1 {
		t.Fatalf("expected 1 Perfect, got %d", len(earned))
	}
	if earned[0].PlayerID != "a" || earned[0].Kind != AwardPerfect {
		t.Error("only the deathless player earns Perfect")
	}
}

func TestResetClearsState(t *testing.T) {
	tr := NewAwardTracker()
	tr.RegisterKill("a", 10.0, WeaponGauntlet, false)
	tr.RegisterDeath("a")
	tr.Reset()

	if len(tr.Records) != 0 {
		t.Error("reset should clear records")
	}
	earned := tr.MatchEnd(map[string]*Player{"a": testPlayer("a")}, 0)
	if len(earned) != 1 {
		t.Error("death state should clear on reset")
	}
}

func TestPruneDropsOldRecords(t *testing.T) {
	tr := NewAwardTracker()
	tr.RegisterKill("a", 10.0, WeaponGauntlet, false)

	tr.Prune(10.0 + awardRetention + 1)
	if len(tr.Records) != 0 {
		t.Error("records past retention should be pruned")
	}
	if len(tr.killTimes) != 0 {
		t.Error("stale kill timestamps should be pruned")
	}
}
