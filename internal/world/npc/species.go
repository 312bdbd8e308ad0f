package npc

import (
	"strings"

	"github.com/fentz26/lorekeeper/internal/fold"
	"github.com/fentz26/lorekeeper/internal/random"
)

// Species of a character.
type Species string

const (
	Dragonborn Species = "dragonborn"
	Dwarf      Species = "dwarf"
	Elf        Species = "elf"
	Gnome      Species = "gnome"
	HalfElf    Species = "half-elf"
	HalfOrc    Species = "half-orc"
	Halfling   Species = "halfling"
	Human      Species = "human"
	Tiefling   Species = "tiefling"
)

// AllSpecies lists every species in command order.
var AllSpecies = random.Table[Species]{
	Dragonborn, Dwarf, Elf, Gnome, HalfElf, HalfOrc, Halfling, Human, Tiefling,
}

// speciesWeights is parallel to AllSpecies and skews random picks toward humans.
var speciesWeights = []int{4, 8, 8, 4, 10, 4, 8, 50, 4}

// ParseSpecies accepts a species name, with "half elf" and "half orc" spelled
// with a space as well.
func ParseSpecies(s string) (Species, bool) {
	s = strings.Join(strings.Fields(fold.String(s)), " ")
	switch s {
	case "half elf":
		return HalfElf, true
	case "half orc":
		return HalfOrc, true
	}
	for _, species := range AllSpecies {
		if string(species) == s {
			return species, true
		}
	}
	return "", false
}

// randomSpecies picks a species by weight.
func randomSpecies(src random.Source) Species {
	return AllSpecies[random.Weighted(src, speciesWeights...)]
}

// Traits generates the species-dependent attributes of a character.
type Traits interface {
	Age(src random.Source) Age
	Gender(src random.Source) Gender
	Size(src random.Source, age Age, gender Gender) Size
}

// Traits returns the generation tables for s. Unknown species use human tables.
func (s Species) Traits() Traits {
	if t, ok := speciesTraits[s]; ok {
		return t
	}
	return humanTraits{}
}

// Ethnicities returns the naming traditions a species draws from.
func (s Species) Ethnicities() random.Table[Ethnicity] {
	if e, ok := speciesEthnicities[s]; ok {
		return e
	}
	return humanEthnicities
}

// Accepts reports whether e is a naming tradition of s.
func (s Species) Accepts(e Ethnicity) bool {
	return s.Ethnicities().Contains(e, func(a, b Ethnicity) bool { return a == b })
}

var speciesTraits = map[Species]Traits{
	Human:      humanTraits{},
	Dragonborn: dragonbornTraits,
	Dwarf:      dwarfTraits,
	Elf:        elfTraits,
	Gnome:      gnomeTraits,
	HalfElf:    halfElfTraits,
	HalfOrc:    halfOrcTraits,
	Halfling:   halflingTraits,
	Tiefling:   tieflingTraits,
}

var humanEthnicities = random.Table[Ethnicity]{Arabic, French, German, Greek, Norse}

var speciesEthnicities = map[Species]random.Table[Ethnicity]{
	Human:      humanEthnicities,
	Dragonborn: {Draconic},
	Dwarf:      {Dwarvish},
	Elf:        {Elvish},
	Gnome:      {Gnomish},
	HalfElf:    {Elvish, Arabic, French, German, Greek, Norse},
	HalfOrc:    {Orcish, Arabic, French, German, Greek, Norse},
	Halfling:   {Hin},
	Tiefling:   {Infernal, Arabic, French, German, Greek, Norse},
}
