package main

import "testing"

func flatArena() *Arena {
	return &Arena{Width: ArenaWidth, Height: ArenaHeight, GroundY: 0,
		Spawns: []SpawnPoint{{X: 200, Y: PlayerRadius}, {X: 3000, Y: PlayerRadius}}}
}

func TestHitscanNearestOnly(t *testing.T) {
	shooter := testPlayer("s")
	shooter.X, shooter.Y = 100, 100
	near := testPlayer("n")
	near.X, near.Y = 300, 100
	far := testPlayer("f")
	far.X, far.Y = 600, 100
	players := map[string]*Player{"s": shooter, "n": near, "f": far}

	ray := Ray{OX: 100, OY: 100, DX: 1, DY: 0, Range: 1000}
	events, _, _ := ResolveHitscan(ray, shooter, statsFor(WeaponMachinegun), players, flatArena())

	if len(events) != 1 {
		t.Fatalf("machinegun should hit one player, got %d events", len(events))
	}
	if events[0].VictimID != "n" {
		t.Errorf("should hit nearest player, hit %s", events[0].VictimID)
	}
}

func TestRailgunPenetrates(t *testing.T) {
	shooter := testPlayer("s")
	shooter.X, shooter.Y = 100, 100
	shooter.Weapon = WeaponRailgun
	near := testPlayer("n")
	near.X, near.Y = 300, 100
	far := testPlayer("f")
	far.X, far.Y = 600, 100
	players := map[string]*Player{"s": shooter, "n": near, "f": far}

	ray := Ray{OX: 100, OY: 100, DX: 1, DY: 0, Range: 2000}
	events, _, _ := ResolveHitscan(ray, shooter, statsFor(WeaponRailgun), players, flatArena())

	if len(events) != 2 {
		t.Fatalf("railgun should hit both players, got %d", len(events))
	}
	if events[0].VictimID != "n" || events[1].VictimID != "f" {
		t.Error("events should be ordered near to far")
	}
}

func TestHitscanDeadPlayersIgnored(t *testing.T) {
	shooter := testPlayer("s")
	shooter.X, shooter.Y = 100, 100
	corpse := testPlayer("c")
	corpse.X, corpse.Y = 300, 100
	corpse.die(false)
	players := map[string]*Player{"s": shooter, "c": corpse}

	ray := Ray{OX: 100, OY: 100, DX: 1, DY: 0, Range: 1000}
	events, _, _ := ResolveHitscan(ray, shooter, statsFor(WeaponMachinegun), players, flatArena())
	if len(events) != 0 {
		t.Error("dead players should not be hit")
	}
}

func TestHitscanGeometryOccludes(t *testing.T) {
	arena := flatArena()
	arena.Pillars = []Pillar{{X: 400, Y: 100, R: 50}}

	shooter := testPlayer("s")
	shooter.X, shooter.Y = 100, 100
	victim := testPlayer("v")
	victim.X, victim.Y = 700, 100
	players := map[string]*Player{"s": shooter, "v": victim}

	ray := Ray{OX: 100, OY: 100, DX: 1, DY: 0, Range: 1000}
	events, endX, _ := ResolveHitscan(ray, shooter, statsFor(WeaponMachinegun), players, arena)

	if len(events) != 0 {
		t.Error("pillar should block the shot")
	}
	if endX > 400 {
		t.Errorf("beam should stop at the pillar, ended at %f", endX)
	}
}

func TestHitscanRangeLimit(t *testing.T) {
	shooter := testPlayer("s")
	shooter.X, shooter.Y = 100, 100
	shooter.Weapon = WeaponGauntlet
	victim := testPlayer("v")
	victim.X, victim.Y = 400, 100
	players := map[string]*Player{"s": shooter, "v": victim}

	stats := statsFor(WeaponGauntlet)
	ray := Ray{OX: 100, OY: 100, DX: 1, DY: 0, Range: stats.Range}
	events, _, _ := ResolveHitscan(ray, shooter, stats, players, flatArena())
	if len(events) != 0 {
		t.Error("gauntlet should not reach a player 300 units away")
	}
}

func TestHitscanTieBreaksByID(t *testing.T) {
	shooter := testPlayer("s")
	shooter.X, shooter.Y = 100, 100
	shooter.Weapon = WeaponRailgun
	// Two victims at the identical spot
	b := testPlayer("b")
	b.X, b.Y = 400, 100
	a := testPlayer("a")
	a.X, a.Y = 400, 100
	players := map[string]*Player{"s": shooter, "b": b, "a": a}

	ray := Ray{OX: 100, OY: 100, DX: 1, DY: 0, Range: 1000}
	events, _, _ := ResolveHitscan(ray, shooter, statsFor(WeaponRailgun), players, flatArena())

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].VictimID != "a" {
		t.Error("equidistant victims should resolve in ascending id order")
	}
}
