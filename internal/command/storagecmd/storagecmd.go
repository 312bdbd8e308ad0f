// Package storagecmd holds the journal commands: saving, listing, loading by
// name, and numeric aliases for the alternatives of the last generation.
package storagecmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fentz26/lorekeeper/internal/command"
	"github.com/fentz26/lorekeeper/internal/fold"
	"github.com/fentz26/lorekeeper/internal/journal"
	"github.com/fentz26/lorekeeper/internal/random"
	"github.com/fentz26/lorekeeper/internal/world/npc"
)

// Name is the family name.
const Name = "storage"

// Save stores the named recent NPC, or the last viewed one when Name is empty.
type Save struct {
	Name string
}

// Journal lists the saved NPCs.
type Journal struct{}

// Load shows a recent entity, a saved one, or reference text by name.
type Load struct {
	Name string
}

// Alias shows the Index-th alternative of the last generation.
type Alias struct {
	Index int
}

func (Save) Family() string    { return Name }
func (Journal) Family() string { return Name }
func (Load) Family() string    { return Name }
func (Alias) Family() string   { return Name }

func (c Save) Run(ctx context.Context, env *command.Env, _ random.Source) string {
	var n *npc.Npc
	if c.Name == "" {
		n = env.Session.LastViewed()
		if n == nil {
			return "There is nothing to save yet."
		}
	} else {
		n = env.Session.FindRecent(c.Name)
		if n == nil {
			saved, err := env.Journal.Load(ctx, c.Name)
			if err == nil && saved != nil {
				return fmt.Sprintf("`%s` is already in your journal.", saved.DisplayName())
			}
			return command.NoMatches(c.Name)
		}
	}

	name := n.DisplayName()
	switch err := env.Journal.Save(ctx, n); {
	case errors.Is(err, journal.ErrAlreadySaved):
		return fmt.Sprintf("`%s` is already in your journal.", name)
	case err != nil:
		env.Logger.Warn("journal save failed", "name", name, "error", err)
		return fmt.Sprintf("Couldn't save `%s`: %v", name, err)
	}
	env.Session.Forget(n)
	env.Logger.Debug("saved to journal", "name", name)
	return fmt.Sprintf("Saving `%s` to journal.", name)
}

func (Journal) Run(ctx context.Context, env *command.Env, _ random.Source) string {
	saved, err := env.Journal.List(ctx)
	if err != nil {
		env.Logger.Warn("journal list failed", "error", err)
		return fmt.Sprintf("Couldn't read your journal: %v", err)
	}
	if len(saved) == 0 {
		return "Your journal is empty."
	}
	lines := make([]string, len(saved))
	for i, n := range saved {
		lines[i] = n.Summary()
	}
	return "# Journal\n" + strings.Join(lines, "\\\n")
}

func (c Load) Run(ctx context.Context, env *command.Env, _ random.Source) string {
	if n := env.Session.FindRecent(c.Name); n != nil {
		env.Session.SetLastViewed(n)
		return command.RenderNpc(n, false)
	}
	saved, err := env.Journal.Load(ctx, c.Name)
	if err != nil {
		env.Logger.Warn("journal load failed", "name", c.Name, "error", err)
	}
	if saved != nil {
		env.Session.SetLastViewed(saved)
		return command.RenderNpc(saved, true)
	}
	if env.Reference != nil {
		if e, ok := env.Reference.Lookup(c.Name); ok {
			return e.Details()
		}
	}
	return command.NoMatches(c.Name)
}

// Run shows the alternate itself, never a namesake from the journal. An
// alternate that left the recent ring after being saved renders as saved.
func (c Alias) Run(ctx context.Context, env *command.Env, _ random.Source) string {
	n, ok := env.Session.Alternate(c.Index)
	if !ok {
		return command.NoMatches(fmt.Sprint(c.Index))
	}
	saved := false
	if !env.Session.IsRecent(n) {
		inJournal, err := env.Journal.Load(ctx, n.DisplayName())
		if err != nil {
			env.Logger.Warn("journal load failed", "name", n.DisplayName(), "error", err)
		}
		saved = inJournal != nil
	}
	env.Session.SetLastViewed(n)
	return command.RenderNpc(n, saved)
}

// Family parses journal commands.
type Family struct{}

func (Family) Name() string { return Name }

func (Family) Parse(input string) (command.Command, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, false
	}
	keyword, rest, _ := strings.Cut(input, " ")
	switch {
	case fold.Equal(keyword, "save"):
		return Save{Name: strings.TrimSpace(rest)}, true
	case fold.Equal(input, "journal"):
		return Journal{}, true
	case len(input) == 1 && input[0] >= '0' && input[0] <= '9':
		return Alias{Index: int(input[0] - '0')}, true
	}
	if r, _ := utf8.DecodeRuneInString(input); unicode.IsUpper(r) {
		return Load{Name: input}, true
	}
	return nil, false
}
