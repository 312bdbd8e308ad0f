// Package models defines the persisted record types for Lorekeeper.
package models

import "time"

// EntryKind names the kind of thing a journal entry holds.
type EntryKind string

const (
	EntryKindNpc EntryKind = "npc"
)

// JournalEntry is one saved item in the user's journal. Body holds the
// entity's JSON encoding.
type JournalEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      EntryKind `json:"kind"`
	Body      []byte    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
