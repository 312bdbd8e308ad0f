package npc

import (
	"github.com/fentz26/lorekeeper/internal/fold"
	"github.com/fentz26/lorekeeper/internal/random"
)

// Ethnicity is a naming tradition.
type Ethnicity string

const (
	Arabic   Ethnicity = "arabic"
	French   Ethnicity = "french"
	German   Ethnicity = "german"
	Greek    Ethnicity = "greek"
	Norse    Ethnicity = "norse"
	Draconic Ethnicity = "draconic"
	Dwarvish Ethnicity = "dwarvish"
	Elvish   Ethnicity = "elvish"
	Gnomish  Ethnicity = "gnomish"
	Hin      Ethnicity = "hin"
	Infernal Ethnicity = "infernal"
	Orcish   Ethnicity = "orcish"
)

// AllEthnicities lists every ethnicity in command order.
var AllEthnicities = random.Table[Ethnicity]{
	Arabic, Draconic, Dwarvish, Elvish, French, German, Gnomish, Greek, Hin, Infernal, Norse, Orcish,
}

// ParseEthnicity matches an ethnicity name ignoring case.
func ParseEthnicity(s string) (Ethnicity, bool) {
	for _, e := range AllEthnicities {
		if fold.Equal(string(e), s) {
			return e, true
		}
	}
	return "", false
}

// Species returns the species an ethnicity belongs to when none is given.
func (e Ethnicity) Species() Species {
	switch e {
	case Draconic:
		return Dragonborn
	case Dwarvish:
		return Dwarf
	case Elvish:
		return Elf
	case Gnomish:
		return Gnome
	case Hin:
		return Halfling
	case Infernal:
		return Tiefling
	case Orcish:
		return HalfOrc
	default:
		return Human
	}
}

// Names generates a name within one naming tradition.
type Names interface {
	Name(src random.Source, age Age, gender Gender) string
}

// Names returns the name table for e. Unknown ethnicities use German names.
func (e Ethnicity) Names() Names {
	if t, ok := ethnicityNames[e]; ok {
		return t
	}
	return germanNames
}

// nameTable picks a given name for the gender and, when the tradition has
// them, a family name.
type nameTable struct {
	masculine []string
	feminine  []string
	surnames  []string
}

// Name draws uniformly from the gender's list. Other genders first flip a coin
// weighted by list sizes so both pools keep their overall frequency.
func (t nameTable) Name(src random.Source, age Age, gender Gender) string {
	var given string
	switch gender {
	case Masculine:
		given = random.Pick(src, t.masculine)
	case Feminine:
		given = random.Pick(src, t.feminine)
	default:
		if random.Weighted(src, len(t.masculine), len(t.feminine)) == 0 {
			return t.Name(src, age, Masculine)
		}
		return t.Name(src, age, Feminine)
	}
	if len(t.surnames) == 0 {
		return given
	}
	return given + " " + random.Pick(src, t.surnames)
}

var ethnicityNames = map[Ethnicity]Names{
	Arabic:   arabicNames,
	French:   frenchNames,
	German:   germanNames,
	Greek:    greekNames,
	Norse:    norseNames,
	Draconic: draconicNames,
	Dwarvish: dwarvishNames,
	Elvish:   elvishNames,
	Gnomish:  gnomishNames,
	Hin:      hinNames,
	Infernal: infernalNames,
	Orcish:   orcishNames,
}
