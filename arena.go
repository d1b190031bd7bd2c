package main

import "math"

const (
	ArenaWidth  = 3200.0
	ArenaHeight = 1200.0

	TelefragRadius = PlayerRadius * 2 // spawn overlap distance
)

// Pillar is a static circular obstacle. Projectiles and hitscan rays
// stop on pillars; grenades bounce off them.
type Pillar struct {
	X, Y, R float64
}

// SpawnPoint is a map-provided respawn location
type SpawnPoint struct {
	X, Y float64
}

// Arena is the static geometry collaborator: outer walls, a flat ground
// plane and pillar obstacles. Read-only during simulation.
type Arena struct {
	Width, Height float64
	GroundY       float64
	Pillars       []Pillar
	Spawns        []SpawnPoint
}

// DefaultArena builds the standard symmetric arena layout
func DefaultArena() *Arena {
	return &Arena{
		Width:   ArenaWidth,
		Height:  ArenaHeight,
		GroundY: 0,
		Pillars: []Pillar{
			{X: 800, Y: 120, R: 60},
			{X: 1600, Y: 200, R: 80},
			{X: 2400, Y: 120, R: 60},
		},
		Spawns: []SpawnPoint{
			{X: 200, Y: PlayerRadius},
			{X: 1100, Y: PlayerRadius},
			{X: 2100, Y: PlayerRadius},
			{X: 3000, Y: PlayerRadius},
		},
	}
}

// OutOfBounds reports whether a point has left the playable volume
func (a *Arena) OutOfBounds(x, y float64) bool {
	return x < 0 || x > a.Width || y < a.GroundY || y > a.Height
}

// ConfinePlayer keeps a player inside the walls and out of pillars
func (a *Arena) ConfinePlayer(p *Player) {
	if p.X < PlayerRadius {
		p.X = PlayerRadius
		if p.VX < 0 {
			p.VX = 0
		}
	} else if p.X > a.Width-PlayerRadius {
		p.X = a.Width - PlayerRadius
		if p.VX > 0 {
			p.VX = 0
		}
	}
	if p.Y > a.Height-PlayerRadius {
		p.Y = a.Height - PlayerRadius
		if p.VY > 0 {
			p.VY = 0
		}
	}
	for _, pl := range a.Pillars {
		dx := p.X - pl.X
		dy := p.Y - pl.Y
		d := math.Sqrt(dx*dx + dy*dy)
		minD := pl.R + PlayerRadius
		if d < minD && d > 1e-6 {
			p.X = pl.X + dx/d*minD
			p.Y = pl.Y + dy/d*minD
		}
	}
}

// GeometryHit describes where a travel segment first meets static
// geometry, with the surface normal at the contact point.
type GeometryHit struct {
	T      float64 // entry parameter along the segment, 0..1
	NX, NY float64 // surface normal (unit)
}

// SegmentHitsGeometry tests the segment (x1,y1)-(x2,y2) against ground,
// walls, ceiling and pillars, returning the nearest contact.
func (a *Arena) SegmentHitsGeometry(x1, y1, x2, y2 float64) (GeometryHit, bool) {
	best := GeometryHit{T: math.MaxFloat64}
	found := false

	consider := func(t, nx, ny float64) {
		if t >= 0 && t <= 1 && t < best.T {
			best = GeometryHit{T: t, NX: nx, NY: ny}
			found = true
		}
	}

	// Ground plane
	if y1 >= a.GroundY && y2 < a.GroundY {
		consider((y1-a.GroundY)/(y1-y2), 0, 1)
	}
	// Walls and ceiling
	if x1 >= 0 && x2 < 0 {
		consider(x1/(x1-x2), 1, 0)
	}
	if x1 <= a.Width && x2 > a.Width {
		consider((a.Width-x1)/(x2-x1), -1, 0)
	}
	if y1 <= a.Height && y2 > a.Height {
		consider((a.Height-y1)/(y2-y1), 0, -1)
	}
	// Pillars
	for _, pl := range a.Pillars {
		if t, ok := segmentCircleHit(x1, y1, x2, y2, pl.X, pl.Y, pl.R); ok {
			hx := x1 + (x2-x1)*t
			hy := y1 + (y2-y1)*t
			nx, ny := KnockbackDir(pl.X, pl.Y, hx, hy)
			consider(t, nx, ny)
		}
	}

	if !found {
		return GeometryHit{}, false
	}
	return best, true
}

// SelectSpawn picks the spawn point farthest from living enemies so
// fresh players are not dropped into a firefight. Deterministic for a
// given world state.
func (a *Arena) SelectSpawn(players map[string]*Player, forID string) SpawnPoint {
	best := a.Spawns[0]
	bestScore := -1.0
	for _, sp := range a.Spawns {
		score := math.MaxFloat64
		for _, p := range players {
			if p.ID == forID || !p.Alive {
				continue
			}
			if d := Distance(sp.X, sp.Y, p.X, p.Y); d < score {
				score = d
			}
		}
		if score > bestScore {
			bestScore = score
			best = sp
		}
	}
	return best
}
