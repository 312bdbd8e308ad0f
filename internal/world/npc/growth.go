package npc

import (
	"sort"

	"github.com/fentz26/lorekeeper/internal/random"
)

// checkpoint pins the height (inches) and body mass index ranges at an age.
type checkpoint struct {
	years  float64
	height [2]float64
	bmi    [2]float64
}

// growthTraits generates non-human species from a lifespan and two growth
// curves. Between checkpoints the ranges are interpolated linearly; past the
// last checkpoint they stay flat.
type growthTraits struct {
	lifespan lifespan
	adult    SizeCategory
	larger   []checkpoint
	smaller  []checkpoint
}

func (g growthTraits) Age(src random.Source) Age {
	return g.lifespan.Age(random.Range(src, 0, g.lifespan.max))
}

func (g growthTraits) Gender(src random.Source) Gender {
	return humanoidGender(src)
}

func (g growthTraits) Size(src random.Source, age Age, gender Gender) Size {
	curve := g.larger
	if smallerStatured(src, gender) {
		curve = g.smaller
	}
	at := interpolate(curve, float64(age.Years))
	h, w := heightWeight(src, at.height[0], at.height[1], at.bmi[0], at.bmi[1])
	return Size{Category: g.category(age.Stage), Height: h, Weight: w}
}

func (g growthTraits) category(stage AgeStage) SizeCategory {
	switch stage {
	case Infant:
		return Tiny
	case Child:
		if g.adult == Medium {
			return Small
		}
		return Tiny
	default:
		return g.adult
	}
}

func interpolate(curve []checkpoint, years float64) checkpoint {
	i := sort.Search(len(curve), func(i int) bool { return curve[i].years > years })
	switch {
	case i == 0:
		return curve[0]
	case i == len(curve):
		return curve[len(curve)-1]
	}
	lo, hi := curve[i-1], curve[i]
	t := (years - lo.years) / (hi.years - lo.years)
	lerp := func(a, b float64) float64 { return a + (b-a)*t }
	return checkpoint{
		years:  years,
		height: [2]float64{lerp(lo.height[0], hi.height[0]), lerp(lo.height[1], hi.height[1])},
		bmi:    [2]float64{lerp(lo.bmi[0], hi.bmi[0]), lerp(lo.bmi[1], hi.bmi[1])},
	}
}

// withAdult copies the youth checkpoints of a curve and replaces the final one.
func withAdult(curve []checkpoint, adult checkpoint) []checkpoint {
	out := append([]checkpoint(nil), curve[:len(curve)-1]...)
	return append(out, adult)
}

var dwarfGrowth = []checkpoint{
	{0, [2]float64{14, 18}, [2]float64{13, 15}},
	{4, [2]float64{24, 28}, [2]float64{15, 17}},
	{20, [2]float64{34, 40}, [2]float64{18, 22}},
	{50, [2]float64{46, 52}, [2]float64{26, 32}},
}

var dwarfTraits = growthTraits{
	lifespan: lifespan{stages: [...]int{4, 20, 50, 75, 150, 250, 300}, max: 400},
	adult:    Medium,
	larger:   dwarfGrowth,
	smaller:  withAdult(dwarfGrowth, checkpoint{50, [2]float64{44, 50}, [2]float64{25, 31}}),
}

var elfGrowth = []checkpoint{
	{0, [2]float64{18, 22}, [2]float64{12, 14}},
	{2, [2]float64{30, 34}, [2]float64{14, 16}},
	{20, [2]float64{48, 56}, [2]float64{14, 17}},
	{100, [2]float64{64, 74}, [2]float64{17, 21}},
}

var elfTraits = growthTraits{
	lifespan: lifespan{stages: [...]int{2, 20, 100, 125, 200, 500, 650}, max: 750},
	adult:    Medium,
	larger:   elfGrowth,
	smaller:  withAdult(elfGrowth, checkpoint{100, [2]float64{60, 70}, [2]float64{16, 20}}),
}

var gnomeGrowth = []checkpoint{
	{0, [2]float64{10, 12}, [2]float64{12, 14}},
	{2, [2]float64{18, 22}, [2]float64{14, 16}},
	{20, [2]float64{28, 32}, [2]float64{15, 17}},
	{40, [2]float64{38, 44}, [2]float64{16, 19}},
}

var gnomeTraits = growthTraits{
	lifespan: lifespan{stages: [...]int{2, 20, 40, 60, 150, 300, 400}, max: 500},
	adult:    Small,
	larger:   gnomeGrowth,
	smaller:  withAdult(gnomeGrowth, checkpoint{40, [2]float64{36, 42}, [2]float64{16, 19}}),
}

var halflingGrowth = []checkpoint{
	{0, [2]float64{10, 12}, [2]float64{12, 14}},
	{2, [2]float64{18, 22}, [2]float64{14, 16}},
	{10, [2]float64{26, 30}, [2]float64{15, 17}},
	{20, [2]float64{34, 38}, [2]float64{18, 21}},
}

var halflingTraits = growthTraits{
	lifespan: lifespan{stages: [...]int{2, 10, 20, 30, 50, 120, 150}, max: 200},
	adult:    Small,
	larger:   halflingGrowth,
	smaller:  withAdult(halflingGrowth, checkpoint{20, [2]float64{32, 36}, [2]float64{18, 21}}),
}

var dragonbornGrowth = []checkpoint{
	{0, [2]float64{20, 26}, [2]float64{13, 15}},
	{1, [2]float64{30, 36}, [2]float64{15, 18}},
	{3, [2]float64{40, 48}, [2]float64{18, 22}},
	{15, [2]float64{72, 82}, [2]float64{25, 32}},
}

var dragonbornTraits = growthTraits{
	lifespan: lifespan{stages: [...]int{1, 3, 15, 20, 35, 60, 70}, max: 80},
	adult:    Medium,
	larger:   dragonbornGrowth,
	smaller:  withAdult(dragonbornGrowth, checkpoint{15, [2]float64{68, 78}, [2]float64{24, 30}}),
}

var tieflingGrowth = []checkpoint{
	{0, [2]float64{18, 22}, [2]float64{12, 14}},
	{2, [2]float64{32, 35}, [2]float64{14, 17}},
	{10, [2]float64{51, 57}, [2]float64{15, 18.5}},
	{18, [2]float64{66, 72}, [2]float64{18.5, 29}},
}

var tieflingTraits = growthTraits{
	lifespan: lifespan{stages: humanLifespan.stages, max: 99},
	adult:    Medium,
	larger:   tieflingGrowth,
	smaller:  withAdult(tieflingGrowth, checkpoint{18, [2]float64{61, 67}, [2]float64{19, 25}}),
}

var halfElfGrowth = []checkpoint{
	{0, [2]float64{18, 22}, [2]float64{12, 14}},
	{2, [2]float64{32, 35}, [2]float64{14, 17}},
	{10, [2]float64{51, 57}, [2]float64{15, 18}},
	{20, [2]float64{64, 72}, [2]float64{17, 25}},
}

var halfElfTraits = growthTraits{
	lifespan: lifespan{stages: [...]int{2, 10, 20, 30, 50, 110, 160}, max: 180},
	adult:    Medium,
	larger:   halfElfGrowth,
	smaller:  withAdult(halfElfGrowth, checkpoint{20, [2]float64{60, 68}, [2]float64{17, 24}}),
}

var halfOrcGrowth = []checkpoint{
	{0, [2]float64{19, 23}, [2]float64{13, 15}},
	{1, [2]float64{28, 32}, [2]float64{14, 17}},
	{8, [2]float64{48, 54}, [2]float64{16, 20}},
	{14, [2]float64{68, 76}, [2]float64{22, 32}},
}

var halfOrcTraits = growthTraits{
	lifespan: lifespan{stages: [...]int{1, 8, 14, 20, 30, 50, 60}, max: 75},
	adult:    Medium,
	larger:   halfOrcGrowth,
	smaller:  withAdult(halfOrcGrowth, checkpoint{14, [2]float64{64, 72}, [2]float64{21, 30}}),
}
