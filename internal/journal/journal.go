// Package journal defines the storage collaborator for saved entities and an
// in-memory implementation of it.
package journal

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/fentz26/lorekeeper/internal/fold"
	"github.com/fentz26/lorekeeper/internal/world/npc"
)

// ErrAlreadySaved is returned when an entity with the same name is in the journal.
var ErrAlreadySaved = errors.New("already saved")

// Journal persists NPCs across sessions. Names are matched under Unicode case
// folding (see package fold), so every implementation agrees on "Élodie" and "ÉLODIE".
type Journal interface {
	// Load returns the saved NPC with the given name, or nil if there is none.
	Load(ctx context.Context, name string) (*npc.Npc, error)
	Save(ctx context.Context, n *npc.Npc) error
	// List returns every saved NPC ordered by name.
	List(ctx context.Context) ([]*npc.Npc, error)
	// Names returns up to limit saved names starting with prefix.
	Names(ctx context.Context, prefix string, limit int) ([]string, error)
}

// Memory is a Journal that lives for the process only.
type Memory struct {
	entries map[string][]byte
}

// NewMemory returns an empty in-memory journal.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

func (m *Memory) Load(_ context.Context, name string) (*npc.Npc, error) {
	body, ok := m.entries[fold.String(name)]
	if !ok {
		return nil, nil
	}
	return Decode(body)
}

func (m *Memory) Save(_ context.Context, n *npc.Npc) error {
	key := fold.String(n.DisplayName())
	if _, ok := m.entries[key]; ok {
		return ErrAlreadySaved
	}
	body, err := Encode(n)
	if err != nil {
		return err
	}
	m.entries[key] = body
	return nil
}

func (m *Memory) List(ctx context.Context) ([]*npc.Npc, error) {
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*npc.Npc, 0, len(keys))
	for _, k := range keys {
		n, err := Decode(m.entries[k])
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (m *Memory) Names(ctx context.Context, prefix string, limit int) ([]string, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, n := range all {
		if limit > 0 && len(out) >= limit {
			break
		}
		if name := n.DisplayName(); fold.HasPrefix(name, strings.TrimSpace(prefix)) {
			out = append(out, name)
		}
	}
	return out, nil
}
