package main

import "testing"

func TestCheckCollision(t *testing.T) {
	if !CheckCollision(0, 0, 10, 15, 0, 10) {
		t.Error("circles 15 apart with radii 10+10 should collide")
	}
	if CheckCollision(0, 0, 10, 25, 0, 10) {
		t.Error("circles 25 apart with radii 10+10 should not collide")
	}
}

func TestSegmentCircleHit(t *testing.T) {
	// Horizontal segment passing through a circle at (50, 0)
	tHit, ok := segmentCircleHit(0, 0, 100, 0, 50, 0, 10)
	if !ok {
		t.Fatal("segment through circle should hit")
	}
	// Entry point is at x=40, so t=0.4
	if tHit < 0.39 || tHit > 0.41 {
		t.Errorf("expected entry t near 0.4, got %f", tHit)
	}
}

func TestSegmentCircleHitStartsInside(t *testing.T) {
	tHit, ok := segmentCircleHit(50, 0, 100, 0, 50, 0, 10)
	if !ok || tHit != 0 {
		t.Errorf("segment starting inside should hit at t=0, got %f %v", tHit, ok)
	}
}

func TestSegmentCircleMiss(t *testing.T) {
	if _, ok := segmentCircleHit(0, 0, 100, 0, 50, 30, 10); ok {
		t.Error("segment passing 30 above a radius-10 circle should miss")
	}
	// Circle behind the segment start
	if _, ok := segmentCircleHit(0, 0, 100, 0, -50, 0, 10); ok {
		t.Error("circle behind the segment should miss")
	}
}

func TestExplosionDamageFalloff(t *testing.T) {
	if d := ExplosionDamage(100, 0, 120); d != 100 {
		t.Errorf("point blank should deal full damage, got %d", d)
	}
	if d := ExplosionDamage(100, 60, 120); d != 50 {
		t.Errorf("half radius should deal half damage, got %d", d)
	}
	if d := ExplosionDamage(100, 120, 120); d != 0 {
		t.Errorf("at the radius damage must be exactly zero, got %d", d)
	}
	if d := ExplosionDamage(100, 500, 120); d != 0 {
		t.Errorf("beyond the radius damage must be zero, got %d", d)
	}
}

func TestExplosionDamageMonotonic(t *testing.T) {
	prev := ExplosionDamage(100, 0, 120)
	for dist := 10.0; dist < 120; dist += 10 {
		d := ExplosionDamage(100, dist, 120)
		if d > prev {
			t.Errorf("damage increased with distance at %f: %d > %d", dist, d, prev)
		}
		prev = d
	}
}

func TestKnockbackDir(t *testing.T) {
	dx, dy := KnockbackDir(0, 0, 10, 0)
	if dx != 1 || dy != 0 {
		t.Errorf("expected (1,0), got (%f,%f)", dx, dy)
	}

	// Degenerate zero-distance blast pushes straight up
	dx, dy = KnockbackDir(5, 5, 5, 5)
	if dx != 0 || dy != 1 {
		t.Errorf("expected (0,1) for zero distance, got (%f,%f)", dx, dy)
	}
}
