package main

import "math"

const (
	PlayerRadius    = 20.0
	PlayerMaxHealth = 100
	PlayerMaxArmor  = 200
	MegaHealthCap   = 200 // mega health may push past PlayerMaxHealth

	// Side-view movement (units are world pixels, Y points up)
	Gravity         = 800.0
	JumpVelocity    = 270.0
	GroundAccel     = 2000.0
	AirAccel        = 600.0
	GroundFriction  = 8.0 // per-second decay factor
	AirFriction     = 0.2
	MaxGroundSpeed  = 320.0
	CrouchSpeedMult = 0.5

	RespawnDelay     = 3.0  // seconds dead before respawn
	WeaponSwitchTime = 0.25 // seconds a switch blocks firing
	LandingTime      = 0.15 // landing animation lockout
	MuzzleOffset     = 24.0 // muzzle distance from player center
)

// Intent is the per-tick input a player (human or bot) feeds the
// simulation. The core never polls devices; this struct is the whole
// input surface.
type Intent struct {
	MoveX  float64 // -1..1 strafe along the ground
	Aim    float64 // aim angle, radians
	Fire   bool
	Jump   bool
	Crouch bool
	Switch WeaponKind // requested weapon, -1 = no request
}

// Powerups holds remaining duration in seconds for each active powerup.
// Zero means inactive.
type Powerups struct {
	Quad   float64
	Battle float64
	Haste  float64
	Regen  float64
	Invis  float64
	Flight float64
}

// Player is one combatant in the arena
type Player struct {
	ID   string
	Name string
	Team int
	Bot  bool

	X, Y     float64
	VX, VY   float64
	AimAngle float64

	OnGround  bool
	Crouching bool

	Health int // may go negative transiently during death processing
	Armor  int

	Weapon        WeaponKind
	PendingWeapon WeaponKind
	SwitchT       float64
	Ammo          [WeaponCount]int
	FireCD        [WeaponCount]float64
	HasWeapon     [WeaponCount]bool

	// Animation / timer state
	BarrelSpin float64 // machinegun barrel phase, spins up while firing
	IdleT      float64
	LandT      float64
	CrouchT    float64
	AirT       float64

	Powerups Powerups

	Frags  int
	Deaths int

	Alive    bool
	RespawnT float64
	Gibbed   bool

	ShotsFired int
	ShotsHit   int

	regenAccum float64 // fractional regen carried between ticks

	Intent Intent

	// Account binding, 0 for guests and bots
	AccountID int64
}

// NewPlayer creates a player ready to be placed at a spawn point
func NewPlayer(id, name string) *Player {
	p := &Player{
		ID:            id,
		Name:          name,
		Alive:         true,
		Health:        PlayerMaxHealth,
		Weapon:        WeaponMachinegun,
		PendingWeapon: WeaponMachinegun,
	}
	p.Intent.Switch = -1
	p.giveStartingLoadout()
	return p
}

func (p *Player) giveStartingLoadout() {
	p.HasWeapon = [WeaponCount]bool{}
	p.Ammo = [WeaponCount]int{}
	p.HasWeapon[WeaponGauntlet] = true
	p.HasWeapon[WeaponMachinegun] = true
	p.Ammo[WeaponMachinegun] = statsFor(WeaponMachinegun).StartAmmo
}

// Update advances the player's movement state machine and timers by one
// tick. Dead players only count down their respawn timer; the
// orchestrator performs the actual respawn so telefrag rules apply.
func (p *Player) Update(dt float64, arena *Arena) {
	for k := range p.FireCD {
		if p.FireCD[k] > 0 {
			p.FireCD[k] -= dt
		}
	}

	if !p.Alive {
		p.RespawnT -= dt
		return
	}

	p.AimAngle = p.Intent.Aim

	// Weapon switch: request latches, firing is blocked until done
	if s := p.Intent.Switch; s >= 0 && s < WeaponCount && s != p.Weapon && p.HasWeapon[s] {
		if p.PendingWeapon != s {
			p.PendingWeapon = s
			p.SwitchT = WeaponSwitchTime
		}
	}
	if p.SwitchT > 0 {
		p.SwitchT -= dt
		if p.SwitchT <= 0 {
			p.SwitchT = 0
			p.Weapon = p.PendingWeapon
		}
	}

	wasAirborne := !p.OnGround

	onGround := p.Y-PlayerRadius <= arena.GroundY && p.VY <= 0
	if onGround {
		p.Y = arena.GroundY + PlayerRadius
		p.VY = 0
		if wasAirborne {
			p.LandT = LandingTime
		}
		p.AirT = 0

		if p.Intent.Crouch {
			p.Crouching = true
			p.CrouchT += dt
		} else {
			p.Crouching = false
			p.CrouchT = 0
			if p.Intent.Jump && p.LandT <= 0 {
				p.VY = JumpVelocity
				onGround = false
			}
		}
	} else {
		p.Crouching = false
		p.CrouchT = 0
		p.AirT += dt
	}
	p.OnGround = onGround

	accel := AirAccel
	friction := AirFriction
	if p.OnGround {
		accel = GroundAccel
		friction = GroundFriction
	}
	maxSpeed := MaxGroundSpeed
	if p.Crouching {
		maxSpeed *= CrouchSpeedMult
	}
	if p.Powerups.Haste > 0 {
		maxSpeed *= 1.3
		accel *= 1.3
	}

	move := Clamp(p.Intent.MoveX, -1, 1)
	p.VX += move * accel * dt
	p.VX -= p.VX * friction * dt
	p.VX = Clamp(p.VX, -maxSpeed, maxSpeed)
	if math.Abs(p.VX) < 0.01 {
		p.VX = 0
	}

	if !p.OnGround && p.Powerups.Flight <= 0 {
		p.VY -= Gravity * dt
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt
	arena.ConfinePlayer(p)

	if p.LandT > 0 {
		p.LandT -= dt
	}

	// Barrel spin advances while the machinegun refire timer runs,
	// then winds down
	if p.Weapon == WeaponMachinegun && p.FireCD[WeaponMachinegun] > 0 {
		p.BarrelSpin += dt * 20
	} else if p.BarrelSpin > 0 {
		p.BarrelSpin = math.Max(0, p.BarrelSpin-dt*10)
	}

	if move == 0 && p.OnGround {
		p.IdleT += dt
	} else {
		p.IdleT = 0
	}

	if p.Powerups.Regen > 0 && p.Health < PlayerMaxHealth {
		// Regeneration restores 15 health/second, never past max
		p.regenAccum += 15 * dt
		for p.regenAccum >= 1 && p.Health < PlayerMaxHealth {
			p.Health++
			p.regenAccum--
		}
	}
}

// MidAir reports whether the player counts as airborne for award and
// hit tagging purposes
func (p *Player) MidAir() bool {
	return p.Alive && !p.OnGround
}

// MuzzlePosition returns the point shots originate from
func (p *Player) MuzzlePosition() (float64, float64) {
	return p.X + math.Cos(p.AimAngle)*MuzzleOffset,
		p.Y + math.Sin(p.AimAngle)*MuzzleOffset
}

// HasQuad reports an active quad damage powerup
func (p *Player) HasQuad() bool { return p.Powerups.Quad > 0 }

// HasBattleSuit reports an active battle suit powerup
func (p *Player) HasBattleSuit() bool { return p.Powerups.Battle > 0 }

// AddHealth applies a health pickup. Regular health caps at max;
// mega items may overheal up to MegaHealthCap. Returns false when the
// pickup would do nothing (caller leaves the item active).
func (p *Player) AddHealth(amount int, mega bool) bool {
	cap := PlayerMaxHealth
	if mega {
		cap = MegaHealthCap
	}
	if p.Health >= cap {
		return false
	}
	p.Health += amount
	if p.Health > cap {
		p.Health = cap
	}
	return true
}

// AddArmor applies an armor pickup, capped at PlayerMaxArmor.
// Returns false when already at cap.
func (p *Player) AddArmor(amount int) bool {
	if p.Armor >= PlayerMaxArmor {
		return false
	}
	p.Armor += amount
	if p.Armor > PlayerMaxArmor {
		p.Armor = PlayerMaxArmor
	}
	return true
}

// GiveWeapon grants a weapon and tops up its ammo
func (p *Player) GiveWeapon(kind WeaponKind) {
	stats := statsFor(kind)
	p.HasWeapon[kind] = true
	p.Ammo[kind] += stats.StartAmmo
	if p.Ammo[kind] > maxAmmo {
		p.Ammo[kind] = maxAmmo
	}
}

// die finalizes death processing: counters are the combat resolver's
// job, this clamps state per the post-death invariants
func (p *Player) die(gibbed bool) {
	p.Alive = false
	p.Gibbed = gibbed
	if p.Health < 0 {
		p.Health = 0
	}
	p.RespawnT = RespawnDelay
	p.VX = 0
	p.VY = 0
	p.Powerups = Powerups{}
}

// Respawn places the player back into the world at the given point
func (p *Player) Respawn(x, y float64) {
	p.X = x
	p.Y = y
	p.VX = 0
	p.VY = 0
	p.Health = PlayerMaxHealth
	p.Armor = 0
	p.Alive = true
	p.Gibbed = false
	p.RespawnT = 0
	p.OnGround = false
	p.SwitchT = 0
	p.Weapon = WeaponMachinegun
	p.PendingWeapon = WeaponMachinegun
	p.FireCD = [WeaponCount]float64{}
	p.giveStartingLoadout()
}

// ToState converts to the protocol snapshot form
func (p *Player) ToState() PlayerState {
	return PlayerState{
		ID:     p.ID,
		Name:   p.Name,
		Team:   p.Team,
		X:      round1(p.X),
		Y:      round1(p.Y),
		VX:     round1(p.VX),
		VY:     round1(p.VY),
		Aim:    round1(p.AimAngle),
		Health: p.Health,
		Armor:  p.Armor,
		Weapon: int(p.Weapon),
		Frags:  p.Frags,
		Deaths: p.Deaths,
		Alive:  p.Alive,
		Crouch: p.Crouching,
		Quad:   p.Powerups.Quad > 0,
		Suit:   p.Powerups.Battle > 0,
	}
}
