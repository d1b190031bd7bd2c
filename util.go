package main

import (
	"crypto/rand"
	"encoding/hex"
	"math"
	"sync/atomic"

	"github.com/google/uuid"
)

// GenerateID returns byteLen random bytes hex-encoded
func GenerateID(byteLen int) string {
	b := make([]byte, byteLen)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// GenerateUUID returns a random v4 UUID string, used for session IDs
func GenerateUUID() string {
	return uuid.NewString()
}

// Clamp limits v to the closed range [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Distance returns the euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// NormalizeAngle wraps an angle into [-pi, pi]
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// finite reports whether v is a usable coordinate (not NaN, not Inf)
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// randFloat returns a random float64 in [0, 1) using a fast xorshift,
// seeded once from crypto/rand. Gameplay randomness only. The state is
// shared by every session's game loop, so it advances via CAS.
var randSrc atomic.Uint64

func randFloat() float64 {
	for {
		old := randSrc.Load()
		x := old
		x ^= x << 13
		x ^= x >> 7
		x ^= x << 17
		if x == 0 {
			x = 1
		}
		if randSrc.CompareAndSwap(old, x) {
			return float64(x%10000) / 10000.0
		}
	}
}

func init() {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	var seed uint64
	for i, v := range b {
		seed |= uint64(v) << (uint(i) * 8)
	}
	if seed == 0 {
		seed = 1
	}
	randSrc.Store(seed)
}
