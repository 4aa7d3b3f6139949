package engine

import (
	"math/rand"
	"time"
)

// RandomSource supplies the uniform draws used for spawn delay, room and position choice.
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// NewRandomSource returns a seeded source; seed 0 seeds from the wall clock
func NewRandomSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// uniformDuration draws from [lo, hi)
func uniformDuration(rng RandomSource, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(rng.Float64()*float64(hi-lo))
}

// uniformInt draws from [lo, hi] inclusive; an empty range collapses to lo
func uniformInt(rng RandomSource, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
