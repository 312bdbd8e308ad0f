// Package referencecmd looks up SRD spells and class features.
package referencecmd

import (
	"context"
	"strings"
	"unicode"

	"github.com/fentz26/lorekeeper/internal/command"
	"github.com/fentz26/lorekeeper/internal/fold"
	"github.com/fentz26/lorekeeper/internal/random"
	"github.com/fentz26/lorekeeper/internal/reference"
)

// Name is the family name.
const Name = "reference"

// Lookup shows one reference entry. An empty Kind searches both tables.
type Lookup struct {
	Kind reference.Kind
	Name string
}

func (Lookup) Family() string { return Name }

func (c Lookup) Run(_ context.Context, env *command.Env, _ random.Source) string {
	var (
		e  *reference.Entry
		ok bool
	)
	if env.Reference == nil {
		return command.NoMatches(c.Name)
	}
	if c.Kind == "" {
		e, ok = env.Reference.Lookup(c.Name)
	} else {
		e, ok = env.Reference.Find(c.Kind, c.Name)
	}
	if !ok {
		return command.NoMatches(c.Name)
	}
	return e.Details()
}

// Family parses "spell <name>", "feature <name>" and bare entry names.
type Family struct {
	ref command.Reference
}

// New returns the family backed by ref.
func New(ref command.Reference) *Family {
	return &Family{ref: ref}
}

func (f *Family) Name() string { return Name }

func (f *Family) Parse(input string) (command.Command, bool) {
	if f.ref == nil {
		return nil, false
	}
	input = strings.TrimSpace(input)
	if kind, name, ok := splitKind(input); ok && name != "" {
		return Lookup{Kind: kind, Name: name}, true
	}
	if e, ok := f.ref.Lookup(input); ok {
		return Lookup{Kind: e.Kind, Name: e.Name}, true
	}
	return nil, false
}

func (f *Family) Autocomplete(_ context.Context, input string, _ *command.Env) []command.Suggestion {
	input = strings.TrimLeftFunc(input, unicode.IsSpace)
	if input == "" || f.ref == nil {
		return nil
	}

	var out []command.Suggestion
	if kind, name, ok := splitKind(input); ok {
		for _, e := range f.ref.Search(kind, name) {
			out = append(out, command.Suggestion{
				Label:   string(kind) + " " + e.Name,
				Summary: e.Summary(),
				Command: Lookup{Kind: kind, Name: e.Name},
			})
		}
		return out
	}
	for _, e := range f.ref.Search("", input) {
		out = append(out, command.Suggestion{
			Label:   e.Name,
			Summary: e.Summary(),
			Command: Lookup{Kind: e.Kind, Name: e.Name},
		})
	}
	return out
}

// splitKind recognizes a leading "spell " or "feature " keyword.
func splitKind(input string) (reference.Kind, string, bool) {
	keyword, rest, found := strings.Cut(input, " ")
	if !found {
		return "", "", false
	}
	for _, kind := range []reference.Kind{reference.KindSpell, reference.KindFeature} {
		if fold.Equal(keyword, string(kind)) {
			return kind, strings.TrimSpace(rest), true
		}
	}
	return "", "", false
}
