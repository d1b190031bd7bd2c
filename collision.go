package main

import "math"

// CheckCollision checks if two circles overlap
func CheckCollision(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	dist2 := dx*dx + dy*dy
	radSum := r1 + r2
	return dist2 <= radSum*radSum
}

// segmentCircleHit returns the entry parameter t in [0,1] where the
// segment (x1,y1)-(x2,y2) first touches the circle, if it does.
// Segments starting inside the circle report t=0. Used for hitscan
// resolution and projectile sub-stepping, so fast bodies test the whole
// travel segment instead of just the endpoint.
func segmentCircleHit(x1, y1, x2, y2, cx, cy, r float64) (float64, bool) {
	dx := x2 - x1
	dy := y2 - y1
	fx := x1 - cx
	fy := y1 - cy

	a := dx*dx + dy*dy
	if a == 0 {
		if fx*fx+fy*fy <= r*r {
			return 0, true
		}
		return 0, false
	}
	b := 2 * (fx*dx + fy*dy)
	c := fx*fx + fy*fy - r*r
	if c <= 0 {
		return 0, true // starts inside
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	if t1 >= 0 && t1 <= 1 {
		return t1, true
	}
	return 0, false
}

// ExplosionDamage computes splash damage at distance dist from a blast
// of the given radius and base damage: linear falloff, exactly zero at
// and beyond the radius.
func ExplosionDamage(base int, dist, radius float64) int {
	if radius <= 0 || dist >= radius {
		return 0
	}
	if dist < 0 {
		dist = 0
	}
	return int(float64(base) * (1 - dist/radius))
}

// KnockbackDir returns the unit vector from a blast or hit position
// toward a victim. Degenerate zero-distance hits push straight up so an
// impulse is always well-defined.
func KnockbackDir(fromX, fromY, toX, toY float64) (float64, float64) {
	dx := toX - fromX
	dy := toY - fromY
	d := math.Sqrt(dx*dx + dy*dy)
	if d < 1e-6 {
		return 0, 1
	}
	return dx / d, dy / d
}
