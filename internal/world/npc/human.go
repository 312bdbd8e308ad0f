package npc

import (
	"math"

	"github.com/fentz26/lorekeeper/internal/random"
)

var humanLifespan = lifespan{stages: [...]int{2, 10, 20, 30, 40, 60, 70}, max: 79}

type humanTraits struct{}

func (humanTraits) Age(src random.Source) Age {
	return humanLifespan.Age(random.Range(src, 0, humanLifespan.max))
}

func (humanTraits) Gender(src random.Source) Gender {
	return humanoidGender(src)
}

func (humanTraits) Size(src random.Source, age Age, gender Gender) Size {
	smaller := smallerStatured(src, gender)
	years := float64(age.Years)

	switch age.Stage {
	case Infant:
		if age.Years == 0 {
			s := random.Range(src, 0, 30)
			return Size{Category: Tiny, Height: 20 + s/3, Weight: 7 + s/2}
		}
		s := random.Range(src, 0, 5)
		return Size{Category: Tiny, Height: 30 + s, Weight: 22 + s}
	case Child:
		y := (years - 2) / 8
		h, w := heightWeight(src, 33+18*y, 35+22*y, 14, 17)
		return Size{Category: Small, Height: h, Weight: w}
	case Adolescent:
		var h, w int
		if smaller {
			y := years - 10
			h, w = heightWeight(src,
				math.Min(51+2*y, 61), math.Min(65+2*y, 67),
				math.Min(15+y*2.5/5, 18.5), math.Min(19+y*4.5/5, 25))
		} else {
			y := (years - 10) / 5
			h, w = heightWeight(src,
				math.Min(51+12*y, 66), math.Min(57+13*y, 72),
				math.Min(15+2.5*y, 18.5), math.Min(18.5+4.5*y, 29))
		}
		return Size{Category: Medium, Height: h, Weight: w}
	default:
		var h, w int
		if smaller {
			h, w = heightWeight(src, 61, 67, 19, 25)
		} else {
			h, w = heightWeight(src, 66, 72, 18.5, 29)
		}
		return Size{Category: Medium, Height: h, Weight: w}
	}
}
