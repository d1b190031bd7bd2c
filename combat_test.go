package main

import "testing"

func testPlayer(id string) *Player {
	p := NewPlayer(id, id)
	p.Respawn(100, 0)
	return p
}

func TestApplyCombatEventBasic(t *testing.T) {
	attacker := testPlayer("a")
	victim := testPlayer("v")

	res := ApplyCombatEvent(CombatEvent{
		AttackerID: "a", VictimID: "v", Damage: 30, X: 50, Y: 0,
	}, attacker, victim)

	if res.Died {
		t.Error("should not die from 30 damage")
	}
	if res.Applied != 30 {
		t.Errorf("expected 30 applied, got %d", res.Applied)
	}
	if victim.Health != 70 {
		t.Errorf("expected health 70, got %d", victim.Health)
	}
}

func TestQuadTriplesDamage(t *testing.T) {
	attacker := testPlayer("a")
	attacker.Powerups.Quad = 10
	victim := testPlayer("v")

	res := ApplyCombatEvent(CombatEvent{
		AttackerID: "a", VictimID: "v", Damage: 10,
	}, attacker, victim)

	if res.Applied != 30 {
		t.Errorf("quad should triple 10 to 30, applied %d", res.Applied)
	}
	if victim.Health != 70 {
		t.Errorf("expected health 70, got %d", victim.Health)
	}
}

func TestSelfDamageHalved(t *testing.T) {
	p := testPlayer("a")

	res := ApplyCombatEvent(CombatEvent{
		AttackerID: "a", VictimID: "a", Damage: 81, Splash: true,
	}, p, p)

	// 81/2 = 40 with integer division
	if res.Applied != 40 {
		t.Errorf("expected 40 applied, got %d", res.Applied)
	}
}

func TestBattleSuitOverridesArmor(t *testing.T) {
	attacker := testPlayer("a")
	victim := testPlayer("v")
	victim.Armor = 100
	victim.Powerups.Battle = 10

	res := ApplyCombatEvent(CombatEvent{
		AttackerID: "a", VictimID: "v", Damage: 40,
	}, attacker, victim)

	if res.Applied != 20 {
		t.Errorf("suit should halve 40 to 20, applied %d", res.Applied)
	}
	if res.ArmorAbsorbed != 0 {
		t.Error("armor should not absorb while suit is active")
	}
	if victim.Armor != 100 {
		t.Errorf("armor should be untouched, got %d", victim.Armor)
	}
}

func TestArmorAbsorbsHalf(t *testing.T) {
	attacker := testPlayer("a")
	victim := testPlayer("v")
	victim.Armor = 50

	res := ApplyCombatEvent(CombatEvent{
		AttackerID: "a", VictimID: "v", Damage: 60,
	}, attacker, victim)

	if res.ArmorAbsorbed != 30 {
		t.Errorf("expected 30 absorbed, got %d", res.ArmorAbsorbed)
	}
	if victim.Armor != 20 {
		t.Errorf("expected armor 20, got %d", victim.Armor)
	}
	if victim.Health != 70 {
		t.Errorf("expected health 70, got %d", victim.Health)
	}
}

func TestArmorNeverGoesNegative(t *testing.T) {
	attacker := testPlayer("a")
	victim := testPlayer("v")
	victim.Armor = 10

	res := ApplyCombatEvent(CombatEvent{
		AttackerID: "a", VictimID: "v", Damage: 100,
	}, attacker, victim)

	if victim.Armor != 0 {
		t.Errorf("armor should deplete to exactly 0, got %d", victim.Armor)
	}
	if res.ArmorAbsorbed != 10 {
		t.Errorf("expected 10 absorbed, got %d", res.ArmorAbsorbed)
	}
	if res.Applied != 90 {
		t.Errorf("expected 90 applied, got %d", res.Applied)
	}
}

func TestGibOnMassiveDamage(t *testing.T) {
	attacker := testPlayer("a")
	attacker.Powerups.Quad = 10
	victim := testPlayer("v")

	// 100 raw * 3 quad = 300 applied, past the gib threshold
	res := ApplyCombatEvent(CombatEvent{
		AttackerID: "a", VictimID: "v", Damage: 100,
	}, attacker, victim)

	if !res.Died {
		t.Error("should die")
	}
	if !res.Gibbed {
		t.Error("300 applied damage should gib")
	}
	if victim.Gibbed != true {
		t.Error("victim should be marked gibbed")
	}
}

func TestExactThresholdDoesNotGib(t *testing.T) {
	attacker := testPlayer("a")
	victim := testPlayer("v")

	res := ApplyCombatEvent(CombatEvent{
		AttackerID: "a", VictimID: "v", Damage: 100,
	}, attacker, victim)

	if !res.Died {
		t.Error("100 damage should kill a 100 health player")
	}
	if res.Gibbed {
		t.Error("exactly 100 applied should not gib")
	}
}

func TestTelefragBypassesMitigation(t *testing.T) {
	attacker := testPlayer("a")
	victim := testPlayer("v")
	victim.Armor = PlayerMaxArmor
	victim.Powerups.Battle = 30

	res := ApplyCombatEvent(CombatEvent{
		AttackerID: "a", VictimID: "v", Damage: TelefragDamage, Telefrag: true,
	}, attacker, victim)

	if !res.Died || !res.Gibbed {
		t.Error("telefrag should always kill and gib")
	}
}

func TestDeadVictimIsNoOp(t *testing.T) {
	attacker := testPlayer("a")
	victim := testPlayer("v")
	victim.die(false)
	deaths := victim.Deaths

	res := ApplyCombatEvent(CombatEvent{
		AttackerID: "a", VictimID: "v", Damage: 50,
	}, attacker, victim)

	if res.Applied != 0 || res.Died {
		t.Error("hits on dead players should do nothing")
	}
	if victim.Deaths != deaths {
		t.Error("death count should not change")
	}
}

func TestKnockbackProportionalAndCapped(t *testing.T) {
	attacker := testPlayer("a")
	small := testPlayer("v1")
	big := testPlayer("v2")
	big.Health = 10000 // keep alive through the big hit

	ApplyCombatEvent(CombatEvent{AttackerID: "a", VictimID: "v1", Damage: 10, X: 0, Y: 0}, attacker, small)
	ApplyCombatEvent(CombatEvent{AttackerID: "a", VictimID: "v2", Damage: 90, X: 0, Y: 0}, attacker, big)

	if big.VX <= small.VX {
		t.Errorf("more damage should push harder: %f vs %f", big.VX, small.VX)
	}
	if big.VX > KnockbackMax {
		t.Errorf("knockback should cap at %f, got %f", KnockbackMax, big.VX)
	}
}

func TestCreditKill(t *testing.T) {
	attacker := testPlayer("a")
	victim := testPlayer("v")

	CreditKill(attacker, victim)
	if attacker.Frags != 1 || victim.Deaths != 1 {
		t.Errorf("expected 1 frag and 1 death, got %d/%d", attacker.Frags, victim.Deaths)
	}

	// Self-kill counts a death but no frag
	CreditKill(attacker, attacker)
	if attacker.Frags != 1 {
		t.Error("self-kill should not award a frag")
	}
	if attacker.Deaths != 1 {
		t.Errorf("self-kill should count a death, got %d", attacker.Deaths)
	}

	// Environment kill
	CreditKill(nil, victim)
	if victim.Deaths != 2 {
		t.Errorf("expected 2 deaths, got %d", victim.Deaths)
	}
}

func TestCheckTelefrag(t *testing.T) {
	players := map[string]*Player{
		"a": testPlayer("a"),
		"b": testPlayer("b"),
		"c": testPlayer("c"),
	}
	players["b"].X, players["b"].Y = 500, 100
	players["c"].X, players["c"].Y = 510, 100
	players["c"].die(false)

	events := CheckTelefrag("a", 505, 100, players)
	if len(events) != 1 {
		t.Fatalf("expected 1 telefrag event, got %d", len(events))
	}
	if events[0].VictimID != "b" || !events[0].Telefrag {
		t.Error("telefrag event should target the living occupant")
	}
}
