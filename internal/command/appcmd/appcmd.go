// Package appcmd holds the application meta commands.
package appcmd

import (
	"context"
	"strings"

	"github.com/fentz26/lorekeeper/internal/command"
	"github.com/fentz26/lorekeeper/internal/fold"
	"github.com/fentz26/lorekeeper/internal/random"
)

// Name is the family name.
const Name = "app"

// Version is reported by "about".
var Version = "dev"

// Kind is an application command.
type Kind string

const (
	About Kind = "about"
	Debug Kind = "debug"
	Help  Kind = "help"
)

var keywords = []struct {
	kind    Kind
	summary string
}{
	{About, "about Lorekeeper"},
	{Debug, "dump the session state"},
	{Help, "list the available commands"},
}

// Command runs one application command.
type Command struct {
	Kind Kind
}

func (c Command) Family() string { return Name }

func (c Command) Run(_ context.Context, env *command.Env, _ random.Source) string {
	switch c.Kind {
	case About:
		return aboutText()
	case Debug:
		return env.Session.Debug()
	default:
		return helpText
	}
}

// Family parses application commands.
type Family struct{}

func (Family) Name() string { return Name }

func (Family) Parse(input string) (command.Command, bool) {
	for _, k := range keywords {
		if fold.Equal(strings.TrimSpace(input), string(k.kind)) {
			return Command{Kind: k.kind}, true
		}
	}
	return nil, false
}

func (Family) Autocomplete(_ context.Context, input string, _ *command.Env) []command.Suggestion {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	var out []command.Suggestion
	for _, k := range keywords {
		if fold.HasPrefix(string(k.kind), input) {
			out = append(out, command.Suggestion{
				Label:   string(k.kind),
				Summary: k.summary,
				Command: Command{Kind: k.kind},
			})
		}
	}
	return out
}

func aboutText() string {
	return "# Lorekeeper " + Version + "\n" +
		"*A prep assistant for tabletop role-playing games.*\n" +
		"\n" +
		"Generate characters on the fly, keep the ones you like in your journal, " +
		"and look up SRD spells and class features. Type ~help~ to see what you can do."
}

const helpText = "# Help\n" +
	"**npc**, a species (~dwarf~, ~half elf~) or a naming tradition (~german~, ~elvish~)\\\n" +
	"Generate a character and ten alternatives.\n" +
	"\n" +
	"**0** to **9**\\\n" +
	"Show one of the alternatives.\n" +
	"\n" +
	"**save**, **save** *Name*\\\n" +
	"Keep the last shown character, or a named one, in your journal.\n" +
	"\n" +
	"**journal**\\\n" +
	"List the characters you saved.\n" +
	"\n" +
	"*Name*\\\n" +
	"Show a saved or recent character, spell or feature by name.\n" +
	"\n" +
	"**spell** *name*, **feature** *name*\\\n" +
	"Look up SRD rules text.\n" +
	"\n" +
	"**about**, **debug**, **help**"
