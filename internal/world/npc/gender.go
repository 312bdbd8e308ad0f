package npc

import "github.com/fentz26/lorekeeper/internal/random"

// Gender of a character, which also decides pronouns.
type Gender string

const (
	Feminine  Gender = "feminine"
	Masculine Gender = "masculine"
	Trans     Gender = "trans"
)

// Pronouns returns the subject/object pair, e.g. "she/her".
func (g Gender) Pronouns() string {
	switch g {
	case Feminine:
		return "she/her"
	case Masculine:
		return "he/him"
	default:
		return "they/them"
	}
}

// Object returns the object pronoun.
func (g Gender) Object() string {
	switch g {
	case Feminine:
		return "her"
	case Masculine:
		return "him"
	default:
		return "them"
	}
}

// humanoidGender draws 1..=101 and checks the ranges in order:
// 1-50 feminine, 51-100 masculine, 101 trans.
func humanoidGender(src random.Source) Gender {
	switch roll := random.Range(src, 1, 101); {
	case roll <= 50:
		return Feminine
	case roll <= 100:
		return Masculine
	default:
		return Trans
	}
}
