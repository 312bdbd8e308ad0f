package npc

import (
	"fmt"
	"strings"
)

// Description is the short italic line under an NPC's heading, e.g.
// "elderly human, she/her" or "dwarf infant, he/him".
func (n *Npc) Description() string {
	noun := "person"
	if species, ok := n.Species.Value(); ok {
		noun = string(species)
	}
	if age, ok := n.Age.Value(); ok {
		noun = age.Stage.Describe(noun)
	}
	if gender, ok := n.Gender.Value(); ok {
		return noun + ", " + gender.Pronouns()
	}
	return noun
}

// Summary is the one-line form used in suggestion lists and alternatives.
func (n *Npc) Summary() string {
	return fmt.Sprintf("`%s` (%s)", n.DisplayName(), n.Description())
}

// Details renders the full NPC block.
func (n *Npc) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n*%s*\n", n.DisplayName(), n.Description())

	var lines []string
	if species, ok := n.Species.Value(); ok {
		lines = append(lines, "**Species:** "+string(species))
	}
	if gender, ok := n.Gender.Value(); ok {
		lines = append(lines, "**Gender:** "+string(gender))
	}
	if age, ok := n.Age.Value(); ok {
		lines = append(lines, "**Age:** "+age.String())
	}
	if size, ok := n.Size.Value(); ok {
		lines = append(lines, "**Size:** "+size.String())
	}
	if len(lines) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(lines, "\\\n"))
	}
	return b.String()
}

// UnsavedNotice reminds the user that n only lives in the session so far.
func (n *Npc) UnsavedNotice() string {
	return fmt.Sprintf("_%s has not yet been saved. Use ~save~ to save %s to your journal._",
		n.DisplayName(), n.Gender.Get().Object())
}
