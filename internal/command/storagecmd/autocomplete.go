package storagecmd

import (
	"context"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/fentz26/lorekeeper/internal/command"
	"github.com/fentz26/lorekeeper/internal/fold"
)

// fuzzyThreshold is the minimum Jaro-Winkler similarity for a fuzzy name match.
const fuzzyThreshold = 0.85

// fuzzyMinLen is the shortest input that may match fuzzily.
const fuzzyMinLen = 3

var keywords = []command.Suggestion{
	{Label: "journal", Summary: "list the characters in your journal", Command: Journal{}},
	{Label: "save", Summary: "save the last character to your journal", Command: Save{}},
}

// Autocomplete offers keywords, the digit aliases of the current alternatives,
// and names from the session (newest first) and then the journal.
func (Family) Autocomplete(ctx context.Context, input string, env *command.Env) []command.Suggestion {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	var out []command.Suggestion
	for _, k := range keywords {
		if fold.HasPrefix(k.Label, input) {
			out = append(out, k)
		}
	}
	if len(input) == 1 && input[0] >= '0' && input[0] <= '9' {
		idx := int(input[0] - '0')
		if n, ok := env.Session.Alternate(idx); ok {
			out = append(out, command.Suggestion{Label: input, Summary: n.Summary(), Command: Alias{Index: idx}})
		}
		return out
	}

	names := nameSuggestions(ctx, input, env, func(name string) bool {
		return fold.HasPrefix(name, input)
	})
	if len(names) == 0 && len([]rune(input)) >= fuzzyMinLen {
		names = nameSuggestions(ctx, "", env, func(name string) bool {
			return similar(input, name)
		})
	}
	return append(out, names...)
}

// nameSuggestions collects up to command.MaxSuggestions names accepted by
// match, recent entities first. prefix narrows the journal query.
func nameSuggestions(ctx context.Context, prefix string, env *command.Env, match func(string) bool) []command.Suggestion {
	var out []command.Suggestion
	seen := make(map[string]bool)
	add := func(name, summary string) {
		key := fold.String(name)
		if seen[key] || len(out) >= command.MaxSuggestions {
			return
		}
		seen[key] = true
		out = append(out, command.Suggestion{Label: name, Summary: summary, Command: Load{Name: name}})
	}

	for _, n := range env.Session.Recent() {
		if name := n.DisplayName(); match(name) {
			add(name, n.Description())
		}
	}

	saved, err := env.Journal.Names(ctx, prefix, 0)
	if err != nil {
		env.Logger.Warn("journal name search failed", "prefix", prefix, "error", err)
		return out
	}
	for _, name := range saved {
		if match(name) {
			add(name, "journal entry")
		}
	}
	return out
}

// similar reports whether input looks or sounds like name or its first word.
func similar(input, name string) bool {
	in, full := fold.String(input), fold.String(name)
	first, _, _ := strings.Cut(full, " ")
	if matchr.JaroWinkler(in, full, false) >= fuzzyThreshold ||
		matchr.JaroWinkler(in, first, false) >= fuzzyThreshold {
		return true
	}
	primary, _ := matchr.DoubleMetaphone(in)
	namePrimary, _ := matchr.DoubleMetaphone(first)
	return primary != "" && primary == namePrimary
}
