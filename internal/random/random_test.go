package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// sequence replays fixed draws; IntN results are reduced modulo n.
type sequence struct {
	ints   []int
	floats []float64
}

func (s *sequence) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *sequence) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func TestNewIsDeterministicForSeed(t *testing.T) {
	a, seedA := New(42)
	b, seedB := New(42)
	assert.Equal(t, uint64(42), seedA)
	assert.Equal(t, seedA, seedB)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNewZeroSeedIsReplaced(t *testing.T) {
	_, seed := New(0)
	assert.NotZero(t, seed)
}

func TestRange(t *testing.T) {
	src := &sequence{ints: []int{0, 79, 80}}
	assert.Equal(t, 0, Range(src, 0, 79))
	assert.Equal(t, 79, Range(src, 0, 79))
	assert.Equal(t, 81, Range(src, 1, 101))
	assert.Equal(t, 5, Range(src, 5, 5))
}

func TestBool(t *testing.T) {
	src := &sequence{floats: []float64{0.009, 0.01, 0.5}}
	assert.True(t, Bool(src, 0.01))
	assert.False(t, Bool(src, 0.01))
	assert.False(t, Bool(src, 0.5))
}

func TestBetween(t *testing.T) {
	src := &sequence{floats: []float64{0.5}}
	assert.InDelta(t, 69.0, Between(src, 66, 72), 1e-9)
}

func TestWeighted(t *testing.T) {
	src := &sequence{ints: []int{0, 49, 50, 99}}
	assert.Equal(t, 0, Weighted(src, 50, 50))
	assert.Equal(t, 0, Weighted(src, 50, 50))
	assert.Equal(t, 1, Weighted(src, 50, 50))
	assert.Equal(t, 1, Weighted(src, 50, 50))

	src = &sequence{ints: []int{3}}
	assert.Equal(t, 2, Weighted(src, 1, 0, 5), "zero weights are skipped")
}

func TestTable(t *testing.T) {
	table := Table[string]{"a", "b", "c"}
	src := &sequence{ints: []int{2, 0}}
	assert.Equal(t, "c", table.Random(src))
	assert.Equal(t, "a", table.Random(src))

	eq := func(a, b string) bool { return a == b }
	assert.True(t, table.Contains("b", eq))
	assert.False(t, table.Contains("z", eq))
}
