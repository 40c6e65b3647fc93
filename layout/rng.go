package layout

import (
	"math"
	"math/rand"
	"time"
)

// defaultRNGSeed is the fixed seed used by simulations when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// rngOrClock is the Random strategy policy: seed==0 ⇒ a fresh clock-based seed.
func rngOrClock(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

// mix64 is a SplitMix64-style finalizer over a pair of indices.
func mix64(a, b uint64) uint64 {
	x := a*0x9e3779b97f4a7c15 ^ (b + 0x9e3779b97f4a7c15)
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// separation returns a unit vector pointing from node j toward node i, used
// when the two coincide. It depends only on the index pair, and
// separation(i, j) == -separation(j, i).
func separation(i, j int) vec {
	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	angle := 2 * math.Pi * float64(mix64(uint64(lo), uint64(hi))>>11) / (1 << 53)
	u := vec{math.Cos(angle), math.Sin(angle)}
	if i == hi {
		return u
	}

	return u.scale(-1)
}
