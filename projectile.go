package main

import "math"

// ProjectileKind enumerates the simulated weapon bodies. Closed set;
// the simulator matches exhaustively.
type ProjectileKind int

const (
	ProjRocket ProjectileKind = iota
	ProjGrenade
	ProjPlasma
	ProjBFG
)

const (
	ProjectileMaxLifetime = 10.0 // hard cap, seconds
	GrenadeFuse           = 2.5  // seconds until self-detonation
	GrenadeBounce         = 0.55 // normal velocity retained per bounce
	GrenadeSlowdown       = 1.5  // tangential velocity divisor per bounce
)

// Projectile is one in-flight body. Owner is a weak reference by id;
// the world resolves it against its player container each tick.
type Projectile struct {
	ID      string
	Kind    ProjectileKind
	OwnerID string
	Weapon  WeaponKind

	X, Y         float64
	PrevX, PrevY float64
	VX, VY       float64

	Damage int
	Splash float64

	Life   float64 // elapsed lifetime
	Fuse   float64 // grenade: remaining fuse
	Bounce int     // grenade: bounces so far
	TrailT float64 // rocket: exhaust trail accumulator

	Alive     bool
	Detonated bool // destroyed with an explosion pending at (X, Y)
}

// NewProjectile spawns a projectile from a fire outcome at the owner's
// muzzle
func NewProjectile(owner *Player, spec *ProjectileSpec) *Projectile {
	x, y := owner.MuzzlePosition()
	return &Projectile{
		ID:      GenerateID(3),
		Kind:    spec.Kind,
		OwnerID: owner.ID,
		Weapon:  spec.Weapon,
		X:       x,
		Y:       y,
		PrevX:   x,
		PrevY:   y,
		VX:      spec.VX,
		VY:      spec.VY,
		Damage:  spec.Damage,
		Splash:  spec.Splash,
		Fuse:    GrenadeFuse,
		Alive:   true,
	}
}

// Radius returns the collision radius for the projectile's kind
func (pr *Projectile) Radius() float64 {
	switch pr.Kind {
	case ProjRocket:
		return 8
	case ProjGrenade:
		return 8
	case ProjPlasma:
		return 6
	case ProjBFG:
		return 12
	}
	panic("projectile kind out of range")
}

// Update integrates the projectile one tick against static geometry.
// Player collision is the orchestrator's job (it owns the player set);
// geometry contact either detonates the body or bounces it.
func (pr *Projectile) Update(dt float64, arena *Arena) {
	if !pr.Alive {
		return
	}

	pr.PrevX = pr.X
	pr.PrevY = pr.Y

	if pr.Kind == ProjGrenade {
		pr.VY -= Gravity * dt
	}

	pr.X += pr.VX * dt
	pr.Y += pr.VY * dt
	pr.Life += dt

	// Degenerate physics input: destroy rather than propagate
	if !finite(pr.X) || !finite(pr.Y) || !finite(pr.VX) || !finite(pr.VY) {
		pr.Alive = false
		return
	}

	if pr.Life > ProjectileMaxLifetime {
		pr.Alive = false
		return
	}

	switch pr.Kind {
	case ProjGrenade:
		pr.Fuse -= dt
		if hit, ok := arena.SegmentHitsGeometry(pr.PrevX, pr.PrevY, pr.X, pr.Y); ok {
			pr.bounceOff(hit)
		}
		// Fuse expiry is independent of bounce count
		if pr.Fuse <= 0 {
			pr.detonateAt(pr.X, pr.Y)
		}
	case ProjRocket:
		pr.TrailT += dt
		fallthrough
	case ProjPlasma, ProjBFG:
		if hit, ok := arena.SegmentHitsGeometry(pr.PrevX, pr.PrevY, pr.X, pr.Y); ok {
			hx := pr.PrevX + (pr.X-pr.PrevX)*hit.T
			hy := pr.PrevY + (pr.Y-pr.PrevY)*hit.T
			pr.detonateAt(hx, hy)
		}
	}

	if pr.Alive && arena.OutOfBounds(pr.X, pr.Y) {
		pr.Alive = false
	}
}

// bounceOff reflects the grenade about the contact normal, damping the
// normal component and slowing the tangential one
func (pr *Projectile) bounceOff(hit GeometryHit) {
	hx := pr.PrevX + (pr.X-pr.PrevX)*hit.T
	hy := pr.PrevY + (pr.Y-pr.PrevY)*hit.T

	vn := pr.VX*hit.NX + pr.VY*hit.NY
	tx := pr.VX - vn*hit.NX
	ty := pr.VY - vn*hit.NY

	pr.VX = tx/GrenadeSlowdown - vn*hit.NX*GrenadeBounce
	pr.VY = ty/GrenadeSlowdown - vn*hit.NY*GrenadeBounce
	pr.X = hx + hit.NX*0.5
	pr.Y = hy + hit.NY*0.5
	pr.Bounce++

	// A grenade at rest on the ground stays put until the fuse runs out
	if math.Abs(pr.VY) < 10 && hit.NY > 0.9 {
		pr.VY = 0
	}
}

// detonateAt marks the projectile destroyed with an explosion pending
func (pr *Projectile) detonateAt(x, y float64) {
	pr.X = x
	pr.Y = y
	pr.Alive = false
	pr.Detonated = true
}

// ToState converts to the protocol snapshot form
func (pr *Projectile) ToState() ProjectileState {
	return ProjectileState{
		ID:    pr.ID,
		Kind:  int(pr.Kind),
		X:     round1(pr.X),
		Y:     round1(pr.Y),
		Owner: pr.OwnerID,
	}
}
