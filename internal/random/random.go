// Package random holds the random stream threaded through content generation
// and the small set of sampling helpers the generation tables share.
package random

import (
	"math/rand/v2"
	"time"
)

// Source is the random stream passed explicitly into every generator.
// *rand.Rand satisfies it.
type Source interface {
	// IntN returns a value in [0, n). n must be positive.
	IntN(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// New returns a PCG-backed generator. A zero seed is replaced by a
// time-derived one; the seed actually used is returned so callers can log it.
func New(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// Range returns an int in [lo, hi].
func Range(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Between returns a float in [lo, hi).
func Between(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Bool returns true with probability p.
func Bool(src Source, p float64) bool {
	return src.Float64() < p
}

// Pick returns a uniformly chosen element. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Weighted returns the index of the chosen weight, checking cumulative
// ranges in order. Zero weights are never chosen.
func Weighted(src Source, weights ...int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	roll := src.IntN(total)
	for i, w := range weights {
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}

// Table is a fixed, ordered set of variants that can be drawn uniformly.
type Table[T any] []T

// Random draws one variant.
func (t Table[T]) Random(src Source) T {
	return Pick(src, t)
}

// Contains reports whether v is one of the variants.
func (t Table[T]) Contains(v T, eq func(a, b T) bool) bool {
	for _, item := range t {
		if eq(item, v) {
			return true
		}
	}
	return false
}
