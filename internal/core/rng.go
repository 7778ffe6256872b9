package core

import "math/rand"

// Rng is the seeded random source owned by a single scene.
type Rng struct {
	r *rand.Rand
}

// NewRng creates a random source from seed.
func NewRng(seed int64) *Rng {
	return &Rng{r: rand.New(rand.NewSource(seed))}
}

// Float returns a value in [0, 1).
func (g *Rng) Float() float32 {
	return g.r.Float32()
}

// FloatRange returns a value in [lo, hi). Reversed bounds are swapped.
func (g *Rng) FloatRange(lo, hi float32) float32 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + g.r.Float32()*(hi-lo)
}

// IntRange returns a value in [lo, hi], both inclusive.
func (g *Rng) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + g.r.Intn(hi-lo+1)
}

// Index returns a uniform index into a slice of length n. n must be positive.
func (g *Rng) Index(n int) int {
	return g.r.Intn(n)
}

// CoinFlip returns true half of the time.
func (g *Rng) CoinFlip() bool {
	return g.r.Intn(2) == 0
}

// Chance returns true with probability p. p <= 0 never fires, p >= 1 always does.
func (g *Rng) Chance(p float32) bool {
	return g.r.Float32() < p
}

// PointIn returns a uniform point inside the box.
func (g *Rng) PointIn(a AABB) Vec2 {
	return Vec2{
		X: g.FloatRange(a.Min.X, a.Max.X),
		Y: g.FloatRange(a.Min.Y, a.Max.Y),
	}
}

// Choose returns a uniformly chosen element of items.
func Choose[T any](g *Rng, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[g.Index(len(items))], true
}
