package pet

import (
	"math/rand"
	"time"
)

// Rand is the simulation's source of randomness. Float64 returns a value in
// [0, 1).
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded source. A zero seed picks one from the clock.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func chance(r Rand, p float64) bool {
	return p > 0 && r.Float64() < p
}

func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
