package vecutil

import (
	"math/rand/v2"
	"time"
)

// RNG is a small non-thread-safe random source. The growth driver holds
// a single RNG and draws from it only in its sequential food-accrual
// loop, so no RNG is ever shared across goroutines.
type RNG struct {
	r *rand.Rand
}

// NewRNG returns an RNG seeded deterministically from seed. Tests and any
// caller wanting reproducible runs should use this with a fixed seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewClockSeededRNG returns an RNG seeded from the current time plus a
// per-worker salt, matching the original engine's "seed per thread from a
// high-resolution clock" scheme. This path is intentionally
// non-deterministic; callers wanting reproducible runs must use NewRNG.
func NewClockSeededRNG(workerSalt uint64) *RNG {
	seed := uint64(time.Now().UnixNano()) ^ (workerSalt * 0x2545f4914f6cdd1d)
	return NewRNG(seed)
}

// SeedForCell derives a deterministic per-cell seed from a run seed and a
// cell id, resolving the spec's open question in favor of reproducibility:
// "implementations wanting reproducibility should seed deterministically
// per cell id."
func SeedForCell(runSeed uint64, cellID int32) uint64 {
	return runSeed*0x100000001b3 ^ uint64(uint32(cellID))
}

// Float64 returns a uniform sample in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// UniformRange returns a uniform sample in [lo, hi).
func (g *RNG) UniformRange(lo, hi float64) float64 {
	return lo + g.r.Float64()*(hi-lo)
}

// IntN returns a uniform sample in [0, n).
func (g *RNG) IntN(n int) int {
	return g.r.IntN(n)
}
