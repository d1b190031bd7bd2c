package main

const (
	QuadMultiplier  = 3
	ArmorAbsorption = 0.5 // share of damage armor diverts
	GibThreshold    = 100 // applied damage in one hit beyond which the death gibs
	KnockbackScale  = 5.0 // impulse per point of applied damage
	KnockbackMax    = 700.0
	TelefragDamage  = 100000
)

// DamageResult reports what a resolved hit did to the victim
type DamageResult struct {
	Applied       int // damage that reached health
	ArmorAbsorbed int
	Died          bool
	Gibbed        bool
}

// ApplyCombatEvent converts a raw combat event into final damage,
// knockback and a death decision. The stage order is fixed and must not
// be reordered: raw damage, quad multiplier, self-damage halving, then
// battle suit (which replaces the armor split) or armor absorption,
// then knockback and the death check.
func ApplyCombatEvent(ev CombatEvent, attacker, victim *Player) DamageResult {
	if victim == nil || !victim.Alive {
		return DamageResult{}
	}

	// Telefrag bypasses every mitigation stage
	if ev.Telefrag {
		victim.Health -= TelefragDamage
		victim.die(true)
		return DamageResult{Applied: TelefragDamage, Died: true, Gibbed: true}
	}

	damage := ev.Damage

	if attacker != nil && attacker.HasQuad() {
		damage *= QuadMultiplier
	}

	selfHit := attacker != nil && attacker.ID == victim.ID
	if selfHit {
		damage /= 2
	}

	var absorbed int
	applied := damage
	if victim.HasBattleSuit() {
		// Suit takes precedence over armor: halve the total, no split
		applied = damage / 2
	} else if victim.Armor > 0 {
		absorbed = int(float64(damage) * ArmorAbsorption)
		if absorbed > victim.Armor {
			absorbed = victim.Armor
		}
		victim.Armor -= absorbed
		applied = damage - absorbed
	}
	if applied < 0 {
		applied = 0
	}

	victim.Health -= applied

	if applied > 0 {
		kx, ky := KnockbackDir(ev.X, ev.Y, victim.X, victim.Y)
		strength := float64(applied) * KnockbackScale
		if strength > KnockbackMax {
			strength = KnockbackMax
		}
		victim.VX += kx * strength
		victim.VY += ky * strength
	}

	result := DamageResult{Applied: applied, ArmorAbsorbed: absorbed}
	if victim.Health <= 0 {
		result.Died = true
		result.Gibbed = applied > GibThreshold
		victim.die(result.Gibbed)
	}
	return result
}

// CreditKill updates frag/death counters after a death. Self-kills and
// environment kills never increment the attacker's frags.
func CreditKill(attacker, victim *Player) {
	victim.Deaths++
	if attacker != nil && attacker.ID != victim.ID {
		attacker.Frags++
	}
}

// CheckTelefrag returns combat events for every living player whose
// body overlaps the given spawn/teleport destination
func CheckTelefrag(spawnerID string, x, y float64, players map[string]*Player) []CombatEvent {
	var events []CombatEvent
	for _, p := range players {
		if p.ID == spawnerID || !p.Alive {
			continue
		}
		if Distance(x, y, p.X, p.Y) < TelefragRadius {
			events = append(events, CombatEvent{
				AttackerID: spawnerID,
				VictimID:   p.ID,
				Damage:     TelefragDamage,
				X:          x,
				Y:          y,
				Telefrag:   true,
			})
		}
	}
	return events
}
