package utils

import (
	"math/rand"
	"time"
)

// Random is the source of every game roll. *rand.Rand satisfies it, so a seeded
// generator gives reproducible encounters.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// NewRandom returns a generator seeded with seed, or with the current time when seed is 0.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	//nolint:gosec // G404: math/rand is acceptable for game mechanics, not for cryptographic purposes
	return rand.New(rand.NewSource(seed))
}

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(r Random, min, max int) int {
	if min >= max {
		return min
	}
	return r.Intn(max-min+1) + min
}

// RandomRange returns a random float64 in [min, max)
func RandomRange(r Random, min, max float64) float64 {
	if min >= max {
		return min
	}
	return min + r.Float64()*(max-min)
}

// Percent returns a roll in [0, 100)
func Percent(r Random) float64 {
	return r.Float64() * 100
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampFloat bounds v to [lo, hi]
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
