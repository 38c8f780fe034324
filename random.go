package perfsynth

import (
	"hash/fnv"
	"math/rand/v2"
	"sync"
)

// Source is the uniform random generator every stochastic step draws from.
// Float64 returns a pseudo-random number in [0,1).
//
// *rand.Rand satisfies Source.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// strategySource derives the source of a single strategy from the run seed and
// the strategy name, so that a strategy draws the same numbers whatever the
// other strategies of the run are.
func strategySource(seed uint64, name string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(name))
	return NewSource(seed ^ h.Sum64())
}

// lockedSource serializes access to a shared Source.
type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource wraps src so that it can be shared between goroutines.
func NewLockedSource(src Source) Source { return &lockedSource{src: src} }

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Float64()
}

// uniform returns a number in [lo, hi).
func uniform(src Source, lo, hi float64) float64 { return lo + src.Float64()*(hi-lo) }

// uniformInt returns an integer in [lo, hi).
func uniformInt(src Source, lo, hi int) int { return lo + int(src.Float64()*float64(hi-lo)) }
