package npc

import "github.com/fentz26/lorekeeper/internal/random"

// Regenerate fills every attribute of n that is not Locked. Locked attributes
// are left alone, draw nothing from src, and condition the attributes after
// them.
func Regenerate(src random.Source, n *Npc) {
	if n.Ethnicity.IsLocked() {
		ethnicity := n.Ethnicity.Get()
		n.Species.ReplaceWith(func(prev Species, ok bool) Species {
			if ok && prev.Accepts(ethnicity) {
				return prev
			}
			return ethnicity.Species()
		})
	} else {
		n.Species.ReplaceWith(func(Species, bool) Species { return randomSpecies(src) })
	}
	species := n.Species.Get()
	traits := species.Traits()

	n.Ethnicity.ReplaceWith(func(Ethnicity, bool) Ethnicity {
		return species.Ethnicities().Random(src)
	})
	n.Gender.ReplaceWith(func(Gender, bool) Gender { return traits.Gender(src) })
	n.Age.ReplaceWith(func(Age, bool) Age { return traits.Age(src) })

	age, gender := n.Age.Get(), n.Gender.Get()
	n.Size.ReplaceWith(func(Size, bool) Size { return traits.Size(src, age, gender) })
	n.Name.ReplaceWith(func(string, bool) string {
		return n.Ethnicity.Get().Names().Name(src, age, gender)
	})
}
