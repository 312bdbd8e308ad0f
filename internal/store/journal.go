package store

import (
	"context"
	"errors"

	"github.com/fentz26/lorekeeper/internal/journal"
	"github.com/fentz26/lorekeeper/internal/models"
	"github.com/fentz26/lorekeeper/internal/world/npc"
)

// NpcJournal exposes the store as a journal.Journal of NPCs.
type NpcJournal struct {
	store *Store
}

var _ journal.Journal = (*NpcJournal)(nil)

// NewNpcJournal wraps s.
func NewNpcJournal(s *Store) *NpcJournal {
	return &NpcJournal{store: s}
}

func (j *NpcJournal) Load(ctx context.Context, name string) (*npc.Npc, error) {
	entry, err := j.store.GetEntryByName(ctx, name)
	if err != nil || entry == nil || entry.Kind != models.EntryKindNpc {
		return nil, err
	}
	return journal.Decode(entry.Body)
}

func (j *NpcJournal) Save(ctx context.Context, n *npc.Npc) error {
	body, err := journal.Encode(n)
	if err != nil {
		return err
	}
	_, err = j.store.SaveEntry(ctx, n.DisplayName(), models.EntryKindNpc, body)
	if errors.Is(err, ErrDuplicateName) {
		return journal.ErrAlreadySaved
	}
	return err
}

func (j *NpcJournal) List(ctx context.Context) ([]*npc.Npc, error) {
	entries, err := j.store.ListEntries(ctx, models.EntryKindNpc)
	if err != nil {
		return nil, err
	}
	out := make([]*npc.Npc, 0, len(entries))
	for _, entry := range entries {
		n, err := journal.Decode(entry.Body)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (j *NpcJournal) Names(ctx context.Context, prefix string, limit int) ([]string, error) {
	return j.store.SearchNames(ctx, prefix, limit)
}
