package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fentz26/lorekeeper/internal/config"
	"github.com/fentz26/lorekeeper/internal/engine"
	"github.com/fentz26/lorekeeper/internal/journal"
	"github.com/fentz26/lorekeeper/internal/random"
	"github.com/fentz26/lorekeeper/internal/reference"
	"github.com/fentz26/lorekeeper/internal/store"
)

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil {
		switch strings.ToLower(cfg.Logging.Level) {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg != nil && cfg.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// openEngine builds an engine from the loaded config. The returned close
// function releases the journal database, if one was opened.
func openEngine(c *config.Config, logger *slog.Logger) (*engine.Engine, func() error, error) {
	closeFn := func() error { return nil }

	var j journal.Journal
	if c.Journal.Enabled {
		s, err := store.New(c.Journal.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening journal: %w", err)
		}
		logger.Debug("journal opened", "path", c.Journal.Path)
		j = store.NewNpcJournal(s)
		closeFn = s.Close
	} else {
		logger.Debug("journal disabled, keeping saves in memory")
		j = journal.NewMemory()
	}

	ref, err := reference.Load()
	if err != nil {
		_ = closeFn()
		return nil, nil, fmt.Errorf("loading reference data: %w", err)
	}
	logger.Debug("reference data loaded", "entries", ref.Len())

	rng, used := random.New(c.Random.Seed)
	logger.Info("session started", "seed", used)

	eng := engine.New(j, ref, rng,
		engine.WithLogger(logger),
		engine.WithRecentCapacity(c.Session.RecentCapacity),
		engine.WithAlternates(c.Session.Alternates),
	)
	return eng, closeFn, nil
}
