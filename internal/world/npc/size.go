package npc

import (
	"fmt"
	"math"

	"github.com/fentz26/lorekeeper/internal/random"
)

// SizeCategory is the rules size of a creature.
type SizeCategory string

const (
	Tiny   SizeCategory = "tiny"
	Small  SizeCategory = "small"
	Medium SizeCategory = "medium"
)

// Size carries height in inches and weight in pounds.
type Size struct {
	Category SizeCategory `json:"category"`
	Height   int          `json:"height"`
	Weight   int          `json:"weight"`
}

// String formats the size as `5'7", 112 lbs (medium)`.
func (s Size) String() string {
	return fmt.Sprintf("%d'%d\", %d lbs (%s)", s.Height/12, s.Height%12, s.Weight, s.Category)
}

// smallerStatured flips the coin that picks the smaller growth curve. It is
// heavily biased by gender and even for everyone else.
func smallerStatured(src random.Source, gender Gender) bool {
	switch gender {
	case Masculine:
		return random.Bool(src, 0.01)
	case Feminine:
		return random.Bool(src, 0.99)
	default:
		return random.Bool(src, 0.5)
	}
}

// heightWeight draws a height and a body mass index from independent uniform
// ranges and derives the weight from them.
func heightWeight(src random.Source, heightLo, heightHi, bmiLo, bmiHi float64) (int, int) {
	height := random.Between(src, heightLo, heightHi)
	bmi := random.Between(src, bmiLo, bmiHi)
	weight := bmi * height * height / 703
	return int(math.Round(height)), int(math.Round(weight))
}
