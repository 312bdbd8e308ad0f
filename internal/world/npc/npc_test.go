package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fentz26/lorekeeper/internal/field"
	"github.com/fentz26/lorekeeper/internal/random"
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

// forbidden fails the test on any draw.
type forbidden struct{ t *testing.T }

func (f forbidden) IntN(int) int {
	f.t.Fatal("unexpected IntN draw")
	return 0
}

func (f forbidden) Float64() float64 {
	f.t.Fatal("unexpected Float64 draw")
	return 0
}

func TestHumanAgeBuckets(t *testing.T) {
	cases := map[int]AgeStage{
		0: Infant, 1: Infant,
		2: Child, 9: Child,
		10: Adolescent, 19: Adolescent,
		20: YoungAdult, 30: Adult, 40: MiddleAged,
		60: Elderly, 69: Elderly,
		70: Geriatric, 79: Geriatric,
	}
	for years, want := range cases {
		assert.Equal(t, want, humanLifespan.Age(years).Stage, "age %d", years)
	}
}

func TestHumanAgeDrawsWholeLifespan(t *testing.T) {
	src := &sequence{ints: []int{79}}
	assert.Equal(t, Age{Stage: Geriatric, Years: 79}, humanTraits{}.Age(src))
}

func TestAgeString(t *testing.T) {
	assert.Equal(t, "under a year", Age{Stage: Infant}.String())
	assert.Equal(t, "1 year", Age{Stage: Infant, Years: 1}.String())
	assert.Equal(t, "64 years", Age{Stage: Elderly, Years: 64}.String())
}

func TestHumanoidGender(t *testing.T) {
	src := &sequence{ints: []int{0, 49, 50, 99, 100}}
	assert.Equal(t, Feminine, humanoidGender(src))
	assert.Equal(t, Feminine, humanoidGender(src))
	assert.Equal(t, Masculine, humanoidGender(src))
	assert.Equal(t, Masculine, humanoidGender(src))
	assert.Equal(t, Trans, humanoidGender(src))
}

func TestGermanNames(t *testing.T) {
	src := &sequence{ints: []int{0, 43, 30, 17}}
	adult := Age{Stage: Adult, Years: 35}

	assert.Equal(t, []string{"Albrecht", "Thoman"}, []string{
		germanNames.Name(src, adult, Masculine),
		germanNames.Name(src, adult, Masculine),
	})
	assert.Equal(t, []string{"Helena", "Els"}, []string{
		germanNames.Name(src, adult, Feminine),
		germanNames.Name(src, adult, Feminine),
	})
}

func TestGermanNamesFromSeed(t *testing.T) {
	src, _ := random.New(8936418)
	adult := Age{Stage: Adult, Years: 35}
	names := German.Names()

	assert.Equal(t, []string{"Albrecht", "Thoman"}, []string{
		names.Name(src, adult, Masculine),
		names.Name(src, adult, Masculine),
	})
	assert.Equal(t, []string{"Helena", "Els"}, []string{
		names.Name(src, adult, Feminine),
		names.Name(src, adult, Feminine),
	})
}

func TestNonBinaryNamesWeighListSizes(t *testing.T) {
	src := &sequence{ints: []int{49, 4, 50, 41}}
	adult := Age{Stage: Adult, Years: 35}
	assert.Equal(t, "Berhart", germanNames.Name(src, adult, Trans))
	assert.Equal(t, "Martha", germanNames.Name(src, adult, Trans))
}

func TestSurnames(t *testing.T) {
	src := &sequence{ints: []int{0, 0}}
	assert.Equal(t, "Andry Bigheart", hinNames.Name(src, Age{}, Feminine))
}

func TestNameTablesAvoidSpeciesWords(t *testing.T) {
	for e, names := range ethnicityNames {
		table := names.(nameTable)
		for _, list := range [][]string{table.masculine, table.feminine, table.surnames} {
			for _, name := range list {
				for _, species := range AllSpecies {
					assert.NotContains(t, name, string(species), "%s name %q", e, name)
				}
			}
		}
		assert.NotEmpty(t, table.masculine, e)
		assert.NotEmpty(t, table.feminine, e)
	}
}

func TestHumanAdultSize(t *testing.T) {
	adult := Age{Stage: Adult, Years: 35}

	src := &sequence{floats: []float64{0.5, 0.5, 0.5}}
	size := humanTraits{}.Size(src, adult, Masculine)
	assert.Equal(t, Size{Category: Medium, Height: 69, Weight: 161}, size)
	assert.Equal(t, `5'9", 161 lbs (medium)`, size.String())

	src = &sequence{floats: []float64{0.5, 0.5, 0.5}}
	size = humanTraits{}.Size(src, adult, Feminine)
	assert.Equal(t, Size{Category: Medium, Height: 64, Weight: 128}, size)
}

func TestHumanInfantSize(t *testing.T) {
	src := &sequence{ints: []int{30}}
	assert.Equal(t, Size{Category: Tiny, Height: 30, Weight: 22},
		humanTraits{}.Size(src, Age{Stage: Infant}, Masculine))

	src = &sequence{ints: []int{5}}
	assert.Equal(t, Size{Category: Tiny, Height: 35, Weight: 27},
		humanTraits{}.Size(src, Age{Stage: Infant, Years: 1}, Feminine))
}

func TestInterpolate(t *testing.T) {
	at := interpolate(dwarfGrowth, 12)
	assert.InDeltaSlice(t, []float64{29, 34}, at.height[:], 1e-9)
	assert.InDeltaSlice(t, []float64{16.5, 19.5}, at.bmi[:], 1e-9)

	assert.Equal(t, dwarfGrowth[0], interpolate(dwarfGrowth, 0))
	assert.Equal(t, dwarfGrowth[len(dwarfGrowth)-1], interpolate(dwarfGrowth, 200))
}

func TestGrowthCategory(t *testing.T) {
	assert.Equal(t, Tiny, dwarfTraits.category(Infant))
	assert.Equal(t, Small, dwarfTraits.category(Child))
	assert.Equal(t, Medium, dwarfTraits.category(Adult))
	assert.Equal(t, Tiny, gnomeTraits.category(Child))
	assert.Equal(t, Small, gnomeTraits.category(Elderly))
}

func TestSmallerCurveKeepsYouth(t *testing.T) {
	for _, traits := range speciesTraits {
		g, ok := traits.(growthTraits)
		if !ok {
			continue
		}
		require.Len(t, g.smaller, len(g.larger))
		assert.Equal(t, g.larger[:len(g.larger)-1], g.smaller[:len(g.smaller)-1])
	}
}

func TestParseSpecies(t *testing.T) {
	for input, want := range map[string]Species{
		"dwarf":     Dwarf,
		"Half Orc":  HalfOrc,
		"half  elf": HalfElf,
		"half-elf":  HalfElf,
		"TIEFLING":  Tiefling,
	} {
		got, ok := ParseSpecies(input)
		assert.True(t, ok, input)
		assert.Equal(t, want, got, input)
	}
	_, ok := ParseSpecies("owlbear")
	assert.False(t, ok)
}

func TestEveryEthnicityHasSpecies(t *testing.T) {
	for _, e := range AllEthnicities {
		assert.True(t, e.Species().Accepts(e), e)
		_, ok := ethnicityNames[e]
		assert.True(t, ok, e)
	}
}

func TestRegenerateFillsEverything(t *testing.T) {
	rng, _ := random.New(7)
	var n Npc
	Regenerate(rng, &n)

	assert.Equal(t, field.Unlocked, n.Name.State())
	assert.Equal(t, field.Unlocked, n.Gender.State())
	assert.Equal(t, field.Unlocked, n.Age.State())
	assert.Equal(t, field.Unlocked, n.Size.State())
	assert.Equal(t, field.Unlocked, n.Species.State())
	assert.Equal(t, field.Unlocked, n.Ethnicity.State())
	assert.True(t, n.Species.Get().Accepts(n.Ethnicity.Get()))
}

func TestRegenerateNeverTouchesLocked(t *testing.T) {
	rng, _ := random.New(99)
	n := Npc{
		Name:    field.New("Brunhilde"),
		Age:     field.New(Age{Stage: Elderly, Years: 65}),
		Species: field.New(Dwarf),
	}
	for i := 0; i < 200; i++ {
		Regenerate(rng, &n)
		require.True(t, n.Name.IsLocked())
		require.Equal(t, "Brunhilde", n.Name.Get())
		require.Equal(t, Age{Stage: Elderly, Years: 65}, n.Age.Get())
		require.Equal(t, Dwarf, n.Species.Get())
		require.Equal(t, Dwarvish, n.Ethnicity.Get())
		require.Equal(t, field.Unlocked, n.Gender.State())
		require.Equal(t, field.Unlocked, n.Size.State())
	}
}

func TestRegenerateLockedDrawsNothing(t *testing.T) {
	n := Npc{
		Name:      field.New("Els"),
		Gender:    field.New(Feminine),
		Age:       field.New(Age{Stage: Adult, Years: 31}),
		Size:      field.New(Size{Category: Medium, Height: 64, Weight: 120}),
		Species:   field.New(Human),
		Ethnicity: field.New(German),
	}
	want := n
	Regenerate(forbidden{t}, &n)
	assert.Equal(t, want, n)
}

func TestRegenerateLockedEthnicityPicksSpecies(t *testing.T) {
	rng, _ := random.New(3)
	for i := 0; i < 50; i++ {
		n := Npc{Ethnicity: field.New(Hin)}
		Regenerate(rng, &n)
		assert.Equal(t, Halfling, n.Species.Get())
	}

	n := Npc{Ethnicity: field.New(Elvish), Species: field.Generated(HalfElf)}
	Regenerate(rng, &n)
	assert.Equal(t, HalfElf, n.Species.Get(), "a compatible previous species is kept")

	n = Npc{Ethnicity: field.New(Elvish), Species: field.Generated(Dwarf)}
	Regenerate(rng, &n)
	assert.Equal(t, Elf, n.Species.Get())
}

func TestRegenerateLockedSpeciesLimitsEthnicity(t *testing.T) {
	rng, _ := random.New(11)
	for i := 0; i < 50; i++ {
		n := Npc{Species: field.New(HalfOrc)}
		Regenerate(rng, &n)
		assert.True(t, HalfOrc.Accepts(n.Ethnicity.Get()), n.Ethnicity.Get())
	}
}

func TestDetails(t *testing.T) {
	n := Npc{
		Name:    field.Generated("Sybil"),
		Gender:  field.Generated(Feminine),
		Age:     field.Generated(Age{Stage: Elderly, Years: 64}),
		Size:    field.Generated(Size{Category: Medium, Height: 67, Weight: 112}),
		Species: field.Generated(Human),
	}
	want := "# Sybil\n" +
		"*elderly human, she/her*\n" +
		"\n" +
		"**Species:** human\\\n" +
		"**Gender:** feminine\\\n" +
		"**Age:** 64 years\\\n" +
		"**Size:** 5'7\", 112 lbs (medium)"
	assert.Equal(t, want, n.Details())
	assert.Equal(t, "`Sybil` (elderly human, she/her)", n.Summary())
	assert.Equal(t, "_Sybil has not yet been saved. Use ~save~ to save her to your journal._", n.UnsavedNotice())
}

func TestDescription(t *testing.T) {
	n := Npc{
		Gender:  field.Generated(Masculine),
		Age:     field.Generated(Age{Stage: Infant}),
		Species: field.Generated(Human),
	}
	assert.Equal(t, "human infant, he/him", n.Description())

	var empty Npc
	assert.Equal(t, "person", empty.Description())
	assert.Equal(t, "# Unnamed NPC\n*person*\n", empty.Details())
	assert.Contains(t, empty.UnsavedNotice(), "save them")
}
