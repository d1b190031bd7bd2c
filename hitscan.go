package main

import "sort"

// Ray is a single hitscan trace: origin, unit direction, max reach
type Ray struct {
	OX, OY float64
	DX, DY float64
	Range  float64
}

type rayHit struct {
	victim *Player
	dist   float64
	x, y   float64
}

// ResolveHitscan traces one ray against geometry and the candidate
// player set. Geometry occludes: the effective range stops at the first
// wall or pillar. Non-penetrating weapons hit only the nearest player;
// the railgun accumulates every player along the beam. Events come back
// ordered near to far. The returned endpoint is where the beam visually
// terminates.
func ResolveHitscan(ray Ray, shooter *Player, stats WeaponStats, players map[string]*Player, arena *Arena) ([]CombatEvent, float64, float64) {
	reach := ray.Range
	endX := ray.OX + ray.DX*reach
	endY := ray.OY + ray.DY*reach

	if hit, ok := arena.SegmentHitsGeometry(ray.OX, ray.OY, endX, endY); ok {
		reach *= hit.T
		endX = ray.OX + ray.DX*reach
		endY = ray.OY + ray.DY*reach
	}

	var hits []rayHit
	for _, p := range players {
		if p.ID == shooter.ID || !p.Alive {
			continue
		}
		t, ok := segmentCircleHit(ray.OX, ray.OY, endX, endY, p.X, p.Y, PlayerRadius)
		if !ok {
			continue
		}
		hits = append(hits, rayHit{
			victim: p,
			dist:   t * reach,
			x:      ray.OX + ray.DX*t*reach,
			y:      ray.OY + ray.DY*t*reach,
		})
	}
	if len(hits) == 0 {
		return nil, endX, endY
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].victim.ID < hits[j].victim.ID
	})

	if !stats.Penetrates {
		hits = hits[:1]
	}

	events := make([]CombatEvent, 0, len(hits))
	for _, h := range hits {
		damage := stats.Damage
		if shooter.Weapon == WeaponShotgun {
			// Pellet damage varies 50-100% of base
			damage = int(float64(damage) * (0.5 + randFloat()*0.5))
		}
		events = append(events, CombatEvent{
			AttackerID: shooter.ID,
			VictimID:   h.victim.ID,
			Damage:     damage,
			X:          h.x,
			Y:          h.y,
			Weapon:     shooter.Weapon,
			MidAir:     h.victim.MidAir(),
		})
	}
	return events, endX, endY
}
