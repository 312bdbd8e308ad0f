// Package worldcmd generates world content.
package worldcmd

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/fentz26/lorekeeper/internal/command"
	"github.com/fentz26/lorekeeper/internal/field"
	"github.com/fentz26/lorekeeper/internal/fold"
	"github.com/fentz26/lorekeeper/internal/random"
	"github.com/fentz26/lorekeeper/internal/world/npc"
)

// Name is the family name.
const Name = "world"

// MaxAlternates is the most alternatives a generation offers, one per digit alias.
const MaxAlternates = 10

// maxNameRerolls bounds the retries spent on a name clash within one batch or
// with the journal.
const maxNameRerolls = 10

// Generate creates an NPC plus alternatives. A set Species or Ethnicity is
// locked on every generated character.
type Generate struct {
	Species   npc.Species
	Ethnicity npc.Ethnicity
}

func (Generate) Family() string { return Name }

func (c Generate) Run(ctx context.Context, env *command.Env, src random.Source) string {
	count := min(max(env.Alternates, 0), MaxAlternates)

	used := make(map[string]bool, count+1)
	primary := c.generate(ctx, env, src, used)
	alternates := make([]*npc.Npc, count)
	for i := range alternates {
		alternates[i] = c.generate(ctx, env, src, used)
	}

	for _, n := range alternates {
		env.Session.Push(n)
	}
	env.Session.Push(primary)
	env.Session.SetAlternates(alternates)
	env.Session.SetLastViewed(primary)
	env.Logger.Debug("generated npcs", "primary", primary.DisplayName(), "alternates", count)

	out := command.RenderNpc(primary, false)
	if count == 0 {
		return out
	}
	lines := make([]string, count)
	for i, n := range alternates {
		lines[i] = fmt.Sprintf("~%d~ %s", i, n.Summary())
	}
	return out + "\n\n*Alternatives:* \\\n" + strings.Join(lines, "\\\n")
}

func (c Generate) generate(ctx context.Context, env *command.Env, src random.Source, used map[string]bool) *npc.Npc {
	n := &npc.Npc{}
	if c.Species != "" {
		n.Species = field.New(c.Species)
	}
	if c.Ethnicity != "" {
		n.Ethnicity = field.New(c.Ethnicity)
	}
	npc.Regenerate(src, n)

	names := n.Ethnicity.Get().Names()
	for i := 0; i < maxNameRerolls && nameTaken(ctx, env, used, n.Name.Get()); i++ {
		n.Name.Replace(names.Name(src, n.Age.Get(), n.Gender.Get()))
	}
	used[fold.String(n.Name.Get())] = true
	return n
}

// nameTaken reports whether name is already used in this batch or saved.
func nameTaken(ctx context.Context, env *command.Env, used map[string]bool, name string) bool {
	if used[fold.String(name)] {
		return true
	}
	if env.Journal == nil {
		return false
	}
	saved, err := env.Journal.Load(ctx, name)
	if err != nil {
		env.Logger.Warn("journal load failed", "name", name, "error", err)
		return false
	}
	return saved != nil
}

// Family parses "npc", species names and ethnicity names.
type Family struct{}

func (Family) Name() string { return Name }

func (Family) Parse(input string) (command.Command, bool) {
	input = strings.TrimSpace(input)
	if fold.Equal(input, "npc") {
		return Generate{}, true
	}
	if s, ok := npc.ParseSpecies(input); ok {
		return Generate{Species: s}, true
	}
	if e, ok := npc.ParseEthnicity(input); ok {
		return Generate{Ethnicity: e}, true
	}
	return nil, false
}

func (Family) Autocomplete(_ context.Context, input string, _ *command.Env) []command.Suggestion {
	input = strings.TrimLeftFunc(input, unicode.IsSpace)
	if input == "" {
		return nil
	}

	var out []command.Suggestion
	if fold.HasPrefix("npc", input) {
		out = append(out, command.Suggestion{Label: "npc", Summary: "generate an NPC", Command: Generate{}})
	}
	for _, s := range npc.AllSpecies {
		label := string(s)
		if fold.HasPrefix(label, input) || fold.HasPrefix(strings.ReplaceAll(label, "-", " "), input) {
			out = append(out, command.Suggestion{
				Label:   label,
				Summary: "generate " + article(label) + " " + label + " NPC",
				Command: Generate{Species: s},
			})
		}
	}
	for _, e := range npc.AllEthnicities {
		label := string(e)
		if fold.HasPrefix(label, input) {
			out = append(out, command.Suggestion{
				Label:   label,
				Summary: "generate " + article(label) + " " + label + " NPC",
				Command: Generate{Ethnicity: e},
			})
		}
	}
	return out
}

func article(word string) string {
	if strings.ContainsRune("aeiou", rune(word[0])) {
		return "an"
	}
	return "a"
}
