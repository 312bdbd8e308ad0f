// Package command defines how text turns into work: command families parse
// input into commands, run them against the session, and offer completions.
package command

import (
	"context"
	"log/slog"
	"sort"

	"github.com/fentz26/lorekeeper/internal/journal"
	"github.com/fentz26/lorekeeper/internal/random"
	"github.com/fentz26/lorekeeper/internal/reference"
	"github.com/fentz26/lorekeeper/internal/session"
	"github.com/fentz26/lorekeeper/internal/world/npc"
)

// MaxSuggestions bounds a merged suggestion list.
const MaxSuggestions = 10

// Command is a parsed, ready-to-run request. It is immutable and run once.
type Command interface {
	// Family names the family that parsed the command.
	Family() string
	// Run executes the command and returns the text shown to the user.
	// Failures are reported in the returned text.
	Run(ctx context.Context, env *Env, src random.Source) string
}

// Family is an independently owned group of commands.
type Family interface {
	Name() string
	// Parse reports whether input is a command of this family.
	Parse(input string) (Command, bool)
	// Autocomplete returns this family's candidates for partial input, in
	// the family's own order.
	Autocomplete(ctx context.Context, input string, env *Env) []Suggestion
}

// Reference looks up static rules text.
type Reference interface {
	Lookup(name string) (*reference.Entry, bool)
	Find(kind reference.Kind, name string) (*reference.Entry, bool)
	Search(kind reference.Kind, prefix string) []*reference.Entry
}

// Env is what a running command may read and mutate.
type Env struct {
	Session   *session.Session
	Journal   journal.Journal
	Reference Reference
	Logger    *slog.Logger
	// Alternates is how many extra candidates generation commands offer.
	Alternates int
}

// Suggestion pairs a completion label with the command it resolves to.
type Suggestion struct {
	Label   string
	Summary string
	Command Command
}

// Merge combines per-family suggestion lists. When a single family
// contributed, its list is returned as is. Otherwise all candidates are sorted
// by label and cut to MaxSuggestions.
func Merge(lists ...[]Suggestion) []Suggestion {
	var contributing [][]Suggestion
	for _, l := range lists {
		if len(l) > 0 {
			contributing = append(contributing, l)
		}
	}
	switch len(contributing) {
	case 0:
		return nil
	case 1:
		return contributing[0]
	}

	var all []Suggestion
	for _, l := range contributing {
		all = append(all, l...)
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Label < all[j].Label })
	if len(all) > MaxSuggestions {
		all = all[:MaxSuggestions]
	}
	return all
}

// NoMatches is the lookup-miss message.
func NoMatches(query string) string {
	return "No matches for \"" + query + "\""
}

// RenderNpc shows an NPC, with the unsaved notice for session-only ones.
func RenderNpc(n *npc.Npc, saved bool) string {
	if saved {
		return n.Details()
	}
	return n.Details() + "\n\n" + n.UnsavedNotice()
}
