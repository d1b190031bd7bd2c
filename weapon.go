package main

import "math"

// WeaponKind enumerates the nine weapons. The set is closed: statsFor
// treats an out-of-range kind as a programming error and panics.
type WeaponKind int

const (
	WeaponGauntlet WeaponKind = iota
	WeaponMachinegun
	WeaponShotgun
	WeaponGrenadeLauncher
	WeaponRocketLauncher
	WeaponLightning
	WeaponRailgun
	WeaponPlasmagun
	WeaponBFG
	WeaponCount // sentinel, not a weapon
)

// FireMode selects how a trigger pull is resolved
type FireMode int

const (
	FireHitscan    FireMode = 0 // instant ray resolution
	FireProjectile FireMode = 1 // spawns a simulated body
)

// WeaponStats is the immutable per-kind stat block
type WeaponStats struct {
	Name       string
	Damage     int     // per hit / per pellet
	Refire     float64 // seconds between shots
	AmmoCost   int
	Mode       FireMode
	Pellets    int     // rays per trigger pull (hitscan only)
	Spread     float64 // max angular deviation per pellet, radians
	Range      float64 // hitscan reach
	Splash     float64 // explosion radius, 0 = no splash
	ProjKind   ProjectileKind
	ProjSpeed  float64
	Penetrates bool // ray continues through players (railgun)
	StartAmmo  int  // ammo granted on weapon pickup / spawn
}

const maxAmmo = 200

// weaponCatalog is the full stat table, indexed by WeaponKind
var weaponCatalog = [WeaponCount]WeaponStats{
	WeaponGauntlet:        {Name: "Gauntlet", Damage: 50, Refire: 0.4, AmmoCost: 0, Mode: FireHitscan, Pellets: 1, Range: 48, StartAmmo: 0},
	WeaponMachinegun:      {Name: "Machinegun", Damage: 7, Refire: 0.1, AmmoCost: 1, Mode: FireHitscan, Pellets: 1, Spread: 0.02, Range: 3200, StartAmmo: 100},
	WeaponShotgun:         {Name: "Shotgun", Damage: 10, Refire: 1.0, AmmoCost: 1, Mode: FireHitscan, Pellets: 11, Spread: 0.1, Range: 1200, StartAmmo: 10},
	WeaponGrenadeLauncher: {Name: "Grenade Launcher", Damage: 100, Refire: 0.8, AmmoCost: 1, Mode: FireProjectile, Splash: 150, ProjKind: ProjGrenade, ProjSpeed: 700, StartAmmo: 10},
	WeaponRocketLauncher:  {Name: "Rocket Launcher", Damage: 100, Refire: 0.8, AmmoCost: 1, Mode: FireProjectile, Splash: 120, ProjKind: ProjRocket, ProjSpeed: 900, StartAmmo: 10},
	WeaponLightning:       {Name: "Lightning Gun", Damage: 8, Refire: 0.05, AmmoCost: 1, Mode: FireHitscan, Pellets: 1, Range: 768, StartAmmo: 100},
	WeaponRailgun:         {Name: "Railgun", Damage: 100, Refire: 1.5, AmmoCost: 1, Mode: FireHitscan, Pellets: 1, Range: 3200, Penetrates: true, StartAmmo: 10},
	WeaponPlasmagun:       {Name: "Plasma Gun", Damage: 20, Refire: 0.1, AmmoCost: 1, Mode: FireProjectile, Splash: 20, ProjKind: ProjPlasma, ProjSpeed: 2000, StartAmmo: 50},
	WeaponBFG:             {Name: "BFG10K", Damage: 100, Refire: 0.2, AmmoCost: 1, Mode: FireProjectile, Splash: 120, ProjKind: ProjBFG, ProjSpeed: 2000, StartAmmo: 20},
}

// statsFor returns the stat block for a weapon kind. Total over the
// closed enumeration; anything else is an invariant violation.
func statsFor(kind WeaponKind) WeaponStats {
	if kind < 0 || kind >= WeaponCount {
		panic("statsFor: weapon kind out of catalog")
	}
	return weaponCatalog[kind]
}

// FireOutcome describes what a trigger pull produced. Fired=false means
// the attempt was silently rejected (cooldown, ammo, mid-switch).
type FireOutcome struct {
	Fired bool
	Rays  []Ray           // FireHitscan: one per pellet
	Spawn *ProjectileSpec // FireProjectile: single spawn
}

// ProjectileSpec carries everything the simulator needs to spawn
type ProjectileSpec struct {
	Kind   ProjectileKind
	VX, VY float64
	Damage int
	Splash float64
	Weapon WeaponKind
}

// CanFire reports whether the player may fire the given weapon now
func CanFire(p *Player, kind WeaponKind) bool {
	stats := statsFor(kind)
	if !p.Alive || p.Weapon != kind {
		return false
	}
	if p.SwitchT > 0 {
		return false
	}
	if p.FireCD[kind] > 0 {
		return false
	}
	return p.Ammo[kind] >= stats.AmmoCost
}

// Fire resolves a trigger pull into rays or a projectile spec.
// On success it deducts ammo, arms the refire timer and restarts the
// machinegun barrel spin. Rejected attempts change nothing.
func Fire(p *Player, kind WeaponKind, aimAngle float64) FireOutcome {
	if !CanFire(p, kind) {
		return FireOutcome{}
	}
	stats := statsFor(kind)

	p.Ammo[kind] -= stats.AmmoCost
	p.FireCD[kind] = stats.Refire
	p.ShotsFired++
	if kind == WeaponMachinegun {
		p.BarrelSpin = 0
	}

	ox, oy := p.MuzzlePosition()

	if stats.Mode == FireProjectile {
		return FireOutcome{
			Fired: true,
			Spawn: &ProjectileSpec{
				Kind:   stats.ProjKind,
				VX:     math.Cos(aimAngle) * stats.ProjSpeed,
				VY:     math.Sin(aimAngle) * stats.ProjSpeed,
				Damage: stats.Damage,
				Splash: stats.Splash,
				Weapon: kind,
			},
		}
	}

	rays := make([]Ray, 0, stats.Pellets)
	for i := 0; i < stats.Pellets; i++ {
		angle := aimAngle
		if stats.Spread > 0 {
			angle += (randFloat() - 0.5) * 2 * stats.Spread
		}
		rays = append(rays, Ray{
			OX:    ox,
			OY:    oy,
			DX:    math.Cos(angle),
			DY:    math.Sin(angle),
			Range: stats.Range,
		})
	}
	return FireOutcome{Fired: true, Rays: rays}
}
