package main

import "testing"

func TestStatsForPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("statsFor should panic on WeaponCount")
		}
	}()
	statsFor(WeaponCount)
}

func TestCanFireChecks(t *testing.T) {
	p := testPlayer("p")
	p.Weapon = WeaponMachinegun

	if !CanFire(p, WeaponMachinegun) {
		t.Error("fresh spawn should be able to fire the machinegun")
	}
	if CanFire(p, WeaponRailgun) {
		t.Error("cannot fire a weapon that is not held")
	}

	p.FireCD[WeaponMachinegun] = 0.05
	if CanFire(p, WeaponMachinegun) {
		t.Error("cannot fire during cooldown")
	}
	p.FireCD[WeaponMachinegun] = 0

	p.SwitchT = 0.1
	if CanFire(p, WeaponMachinegun) {
		t.Error("cannot fire mid-switch")
	}
	p.SwitchT = 0

	p.Ammo[WeaponMachinegun] = 0
	if CanFire(p, WeaponMachinegun) {
		t.Error("cannot fire without ammo")
	}

	p.die(false)
	if CanFire(p, WeaponGauntlet) {
		t.Error("dead players cannot fire")
	}
}

func TestGauntletNeedsNoAmmo(t *testing.T) {
	p := testPlayer("p")
	p.Weapon = WeaponGauntlet
	p.Ammo[WeaponGauntlet] = 0
	if !CanFire(p, WeaponGauntlet) {
		t.Error("gauntlet should fire with zero ammo")
	}
}

func TestFireDeductsAmmoAndArmsCooldown(t *testing.T) {
	p := testPlayer("p")
	p.Weapon = WeaponMachinegun
	ammo := p.Ammo[WeaponMachinegun]

	outcome := Fire(p, WeaponMachinegun, 0)
	if !outcome.Fired {
		t.Fatal("fire should succeed")
	}
	if p.Ammo[WeaponMachinegun] != ammo-1 {
		t.Errorf("expected ammo %d, got %d", ammo-1, p.Ammo[WeaponMachinegun])
	}
	if p.FireCD[WeaponMachinegun] != statsFor(WeaponMachinegun).Refire {
		t.Error("cooldown should be armed")
	}
	if p.ShotsFired != 1 {
		t.Errorf("expected 1 shot fired, got %d", p.ShotsFired)
	}

	// Second pull during cooldown is rejected and changes nothing
	outcome = Fire(p, WeaponMachinegun, 0)
	if outcome.Fired {
		t.Error("fire during cooldown should be rejected")
	}
	if p.Ammo[WeaponMachinegun] != ammo-1 || p.ShotsFired != 1 {
		t.Error("rejected fire must not consume ammo or count a shot")
	}
}

func TestShotgunPelletCount(t *testing.T) {
	p := testPlayer("p")
	p.GiveWeapon(WeaponShotgun)
	p.Weapon = WeaponShotgun

	outcome := Fire(p, WeaponShotgun, 0)
	if !outcome.Fired {
		t.Fatal("fire should succeed")
	}
	if len(outcome.Rays) != statsFor(WeaponShotgun).Pellets {
		t.Errorf("expected %d pellets, got %d", statsFor(WeaponShotgun).Pellets, len(outcome.Rays))
	}
	if p.ShotsFired != 1 {
		t.Errorf("one trigger pull is one shot regardless of pellets, got %d", p.ShotsFired)
	}
}

func TestRocketFireSpawnsProjectile(t *testing.T) {
	p := testPlayer("p")
	p.GiveWeapon(WeaponRocketLauncher)
	p.Weapon = WeaponRocketLauncher

	outcome := Fire(p, WeaponRocketLauncher, 0)
	if !outcome.Fired {
		t.Fatal("fire should succeed")
	}
	if outcome.Spawn == nil {
		t.Fatal("rocket fire should produce a projectile spec")
	}
	if outcome.Spawn.Kind != ProjRocket {
		t.Error("wrong projectile kind")
	}
	if outcome.Spawn.VX != statsFor(WeaponRocketLauncher).ProjSpeed {
		t.Errorf("aim angle 0 should give full horizontal speed, got %f", outcome.Spawn.VX)
	}
}

func TestWeaponCatalogComplete(t *testing.T) {
	for k := WeaponKind(0); k < WeaponCount; k++ {
		stats := statsFor(k)
		if stats.Name == "" {
			t.Errorf("weapon %d has no name", k)
		}
		if stats.Damage <= 0 {
			t.Errorf("weapon %s has no damage", stats.Name)
		}
		if stats.Refire <= 0 {
			t.Errorf("weapon %s has no refire time", stats.Name)
		}
		if stats.Mode == FireProjectile && stats.ProjSpeed <= 0 {
			t.Errorf("projectile weapon %s has no speed", stats.Name)
		}
		if stats.Mode == FireHitscan && stats.Range <= 0 {
			t.Errorf("hitscan weapon %s has no range", stats.Name)
		}
	}
}
