// Package engine wires the command families to the session and collaborators
// and is the single entry point for running and completing input.
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fentz26/lorekeeper/internal/command"
	"github.com/fentz26/lorekeeper/internal/command/appcmd"
	"github.com/fentz26/lorekeeper/internal/command/referencecmd"
	"github.com/fentz26/lorekeeper/internal/command/storagecmd"
	"github.com/fentz26/lorekeeper/internal/command/worldcmd"
	"github.com/fentz26/lorekeeper/internal/journal"
	"github.com/fentz26/lorekeeper/internal/random"
	"github.com/fentz26/lorekeeper/internal/session"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRecentCapacity bounds the session's recent ring.
func WithRecentCapacity(n int) Option {
	return func(e *Engine) { e.recentCapacity = n }
}

// WithAlternates sets how many alternatives a generation offers.
func WithAlternates(n int) Option {
	return func(e *Engine) { e.alternates = n }
}

// Engine runs one session. It is single-threaded: callers must not run
// commands or autocomplete concurrently.
type Engine struct {
	families       []command.Family
	env            *command.Env
	rng            random.Source
	logger         *slog.Logger
	recentCapacity int
	alternates     int
}

// New returns an engine with a fresh session. Families are tried in the order
// app, storage, reference, world.
func New(j journal.Journal, ref command.Reference, rng random.Source, opts ...Option) *Engine {
	e := &Engine{
		rng:            rng,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		recentCapacity: session.DefaultCapacity,
		alternates:     worldcmd.MaxAlternates,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.families = []command.Family{
		appcmd.Family{},
		storagecmd.Family{},
		referencecmd.New(ref),
		worldcmd.Family{},
	}
	e.env = &command.Env{
		Session:    session.New(e.recentCapacity),
		Journal:    j,
		Reference:  ref,
		Logger:     e.logger,
		Alternates: e.alternates,
	}
	return e
}

// Families returns the family names in resolution order.
func (e *Engine) Families() []string {
	names := make([]string, len(e.families))
	for i, f := range e.families {
		names[i] = f.Name()
	}
	return names
}

// Session exposes the session state.
func (e *Engine) Session() *session.Session {
	return e.env.Session
}

// Resolve parses input with the first family that accepts it.
func (e *Engine) Resolve(input string) (command.Command, error) {
	input = strings.TrimSpace(input)
	if input != "" {
		for _, f := range e.families {
			if cmd, ok := f.Parse(input); ok {
				e.logger.Debug("resolved command", "input", input, "family", f.Name())
				return cmd, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, input)
}

// Command resolves and runs input. The only error is ErrUnknownCommand;
// failures while running are part of the returned text.
func (e *Engine) Command(ctx context.Context, input string) (string, error) {
	cmd, err := e.Resolve(input)
	if err != nil {
		return "", err
	}
	return cmd.Run(ctx, e.env, e.rng), nil
}

// Run executes an already resolved command, e.g. one picked from suggestions.
func (e *Engine) Run(ctx context.Context, cmd command.Command) string {
	return cmd.Run(ctx, e.env, e.rng)
}

// Autocomplete asks every family for candidates and merges them.
func (e *Engine) Autocomplete(ctx context.Context, input string) []command.Suggestion {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	lists := make([][]command.Suggestion, len(e.families))
	for i, f := range e.families {
		lists[i] = f.Autocomplete(ctx, input, e.env)
		if len(lists[i]) > 0 {
			e.logger.Debug("suggestions", "family", f.Name(), "count", len(lists[i]))
		}
	}
	return command.Merge(lists...)
}
