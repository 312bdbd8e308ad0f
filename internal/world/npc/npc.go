// Package npc generates non-player characters.
//
// Every attribute of an Npc is a field.Field so that values typed by the user
// (Locked) survive regeneration while generated values (Unlocked) are re-rolled.
// Attributes are generated in a fixed order because later distributions are
// conditioned on earlier ones: species, ethnicity, gender, age, size, name.
package npc

import "github.com/fentz26/lorekeeper/internal/field"

// Npc is a generated or user-described non-player character.
type Npc struct {
	Name      field.Field[string]    `json:"name"`
	Gender    field.Field[Gender]    `json:"gender"`
	Age       field.Field[Age]       `json:"age"`
	Size      field.Field[Size]      `json:"size"`
	Species   field.Field[Species]   `json:"species"`
	Ethnicity field.Field[Ethnicity] `json:"ethnicity"`
}

// DisplayName returns the name or a placeholder for unnamed characters.
func (n *Npc) DisplayName() string {
	if name, ok := n.Name.Value(); ok && name != "" {
		return name
	}
	return "Unnamed NPC"
}
