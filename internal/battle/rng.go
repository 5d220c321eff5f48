package battle

import "math/rand/v2"

// Rand is the source of every random draw the engine makes: critical hits,
// the damage spread, status rolls, durations, and move selection. Injecting
// it keeps simulations replayable.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform integer in [lo, hi] inclusive.
	IntN(lo, hi int) int
}

type seededRand struct {
	r *rand.Rand
}

// NewSeededRand returns a Rand with a fixed seed for replayable battles.
func NewSeededRand(seed uint64) Rand {
	return &seededRand{r: rand.New(rand.NewPCG(seed, 0))}
}

// NewRand returns a Rand seeded from the process-global generator.
func NewRand() Rand {
	return &seededRand{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (s *seededRand) Float64() float64 {
	return s.r.Float64()
}

func (s *seededRand) IntN(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}
