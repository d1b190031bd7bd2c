package main

import "math"

const (
	BotAimError    = 0.06 // radians of aim slop
	BotFireRange   = 1400.0
	BotThinkPeriod = 0.4 // seconds between steering decisions
)

// Bot drives one player through the same Intent struct a remote client
// fills in. It has no private channel into the simulation: whatever a
// bot does, a human could have sent.
type Bot struct {
	PlayerID string

	thinkT  float64
	moveDir float64
	jumpT   float64
}

// NewBot attaches an AI driver to a player id
func NewBot(playerID string) *Bot {
	return &Bot{PlayerID: playerID, moveDir: 1}
}

// Think produces this tick's intent for the bot's player
func (b *Bot) Think(p *Player, players map[string]*Player, dt float64) Intent {
	intent := Intent{Switch: -1}
	if !p.Alive {
		return intent
	}

	target := b.nearestEnemy(p, players)

	b.thinkT -= dt
	if b.thinkT <= 0 {
		b.thinkT = BotThinkPeriod
		b.steer(p, target)
	}
	b.jumpT -= dt

	intent.MoveX = b.moveDir

	if target != nil {
		dx := target.X - p.X
		dy := target.Y - p.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		intent.Aim = math.Atan2(dy, dx) + (randFloat()-0.5)*2*BotAimError
		intent.Fire = dist < BotFireRange

		// Jump to chase targets holding high ground
		if dy > 60 && p.OnGround && b.jumpT <= 0 {
			intent.Jump = true
			b.jumpT = 1.5
		}
	} else {
		intent.Aim = 0
		if b.moveDir < 0 {
			intent.Aim = math.Pi
		}
	}

	if s := b.pickWeapon(p); s != p.Weapon {
		intent.Switch = s
	}
	return intent
}

// nearestEnemy returns the closest living opponent, nil if alone
func (b *Bot) nearestEnemy(p *Player, players map[string]*Player) *Player {
	var best *Player
	bestD := math.MaxFloat64
	for _, other := range players {
		if other.ID == p.ID || !other.Alive {
			continue
		}
		if p.Team != TeamNone && other.Team == p.Team {
			continue
		}
		if other.Powerups.Invis > 0 {
			continue
		}
		d := Distance(p.X, p.Y, other.X, other.Y)
		if d < bestD {
			bestD = d
			best = other
		}
	}
	return best
}

// steer picks a movement direction: close distance to the target,
// otherwise patrol, reversing at walls
func (b *Bot) steer(p *Player, target *Player) {
	if target != nil {
		dx := target.X - p.X
		switch {
		case dx > 120:
			b.moveDir = 1
		case dx < -120:
			b.moveDir = -1
		default:
			// Strafe around close targets
			if randFloat() < 0.5 {
				b.moveDir = -b.moveDir
			}
		}
		return
	}
	if p.X < 200 {
		b.moveDir = 1
	} else if p.X > ArenaWidth-200 {
		b.moveDir = -1
	} else if randFloat() < 0.2 {
		b.moveDir = -b.moveDir
	}
}

// pickWeapon returns the best owned weapon with ammo, preferring heavy
// hitters and falling back to the gauntlet
func (b *Bot) pickWeapon(p *Player) WeaponKind {
	order := []WeaponKind{
		WeaponRailgun,
		WeaponRocketLauncher,
		WeaponLightning,
		WeaponPlasmagun,
		WeaponShotgun,
		WeaponGrenadeLauncher,
		WeaponBFG,
		WeaponMachinegun,
	}
	for _, k := range order {
		if p.HasWeapon[k] && p.Ammo[k] >= statsFor(k).AmmoCost {
			return k
		}
	}
	return WeaponGauntlet
}
