package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fentz26/lorekeeper/internal/field"
	"github.com/fentz26/lorekeeper/internal/journal"
	"github.com/fentz26/lorekeeper/internal/models"
	"github.com/fentz26/lorekeeper/internal/world/npc"
)

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "journal.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer s.Close()

	// Verify file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestEntryCRUD(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()
	ctx := context.Background()

	// Create
	entry, err := s.SaveEntry(ctx, "Sybil", models.EntryKindNpc, []byte(`{"name":"Sybil"}`))
	if err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	if entry.ID == "" {
		t.Error("Entry ID should not be empty")
	}

	// Get ignores case
	got, err := s.GetEntryByName(ctx, "sYBIL")
	if err != nil {
		t.Fatalf("GetEntryByName failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected entry to exist")
	}
	if got.Name != "Sybil" {
		t.Errorf("Expected name 'Sybil', got %s", got.Name)
	}
	if string(got.Body) != `{"name":"Sybil"}` {
		t.Errorf("Unexpected body %s", got.Body)
	}
	if got.Kind != models.EntryKindNpc {
		t.Errorf("Expected kind npc, got %s", got.Kind)
	}

	// Missing entry is not an error
	missing, err := s.GetEntryByName(ctx, "Nobody")
	if err != nil {
		t.Fatalf("GetEntryByName failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for missing entry, got %+v", missing)
	}

	// List
	entries, err := s.ListEntries(ctx, "")
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(entries))
	}
}

func TestSaveEntry_DuplicateName(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()
	ctx := context.Background()

	successCount := 0
	dupCount := 0
	for i, name := range []string{"Els", "ELS", "els"} {
		_, err := s.SaveEntry(ctx, name, models.EntryKindNpc, []byte(fmt.Sprintf(`{"n":%d}`, i)))
		if err == nil {
			successCount++
		} else if err == ErrDuplicateName {
			dupCount++
		} else {
			t.Errorf("Unexpected error: %v", err)
		}
	}

	if successCount != 1 {
		t.Errorf("Expected exactly 1 saved entry, got %d", successCount)
	}
	if dupCount != 2 {
		t.Errorf("Expected 2 duplicates, got %d", dupCount)
	}
}

func TestUnicodeNamesFoldCase(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()
	ctx := context.Background()

	if _, err := s.SaveEntry(ctx, "Élodie", models.EntryKindNpc, []byte(`{}`)); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}

	got, err := s.GetEntryByName(ctx, "ÉLODIE")
	if err != nil {
		t.Fatalf("GetEntryByName failed: %v", err)
	}
	if got == nil || got.Name != "Élodie" {
		t.Fatalf("Expected Élodie, got %+v", got)
	}

	if _, err := s.SaveEntry(ctx, "éLODIE", models.EntryKindNpc, []byte(`{}`)); err != ErrDuplicateName {
		t.Errorf("Expected ErrDuplicateName, got %v", err)
	}

	names, err := s.SearchNames(ctx, "ÉL", 0)
	if err != nil {
		t.Fatalf("SearchNames failed: %v", err)
	}
	if len(names) != 1 || names[0] != "Élodie" {
		t.Errorf("Expected [Élodie], got %v", names)
	}
}

func TestSaveEntry_EmptyName(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	_, err := s.SaveEntry(context.Background(), "  ", models.EntryKindNpc, []byte("{}"))
	if err != ErrEmptyName {
		t.Errorf("Expected ErrEmptyName, got %v", err)
	}
}

func TestSearchNames(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()
	ctx := context.Background()

	for _, name := range []string{"Amira", "Amir", "Zoe", "Am_x"} {
		if _, err := s.SaveEntry(ctx, name, models.EntryKindNpc, []byte("{}")); err != nil {
			t.Fatalf("SaveEntry failed: %v", err)
		}
	}

	names, err := s.SearchNames(ctx, "am", 10)
	if err != nil {
		t.Fatalf("SearchNames failed: %v", err)
	}
	if fmt.Sprint(names) != "[Am_x Amir Amira]" {
		t.Errorf("Unexpected names %v", names)
	}

	// LIKE wildcards in the prefix are literal
	names, err = s.SearchNames(ctx, "Am_", 10)
	if err != nil {
		t.Fatalf("SearchNames failed: %v", err)
	}
	if len(names) != 1 || names[0] != "Am_x" {
		t.Errorf("Expected only Am_x, got %v", names)
	}

	names, err = s.SearchNames(ctx, "", 2)
	if err != nil {
		t.Fatalf("SearchNames failed: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("Expected limit of 2, got %v", names)
	}
}

func TestNpcJournal(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()
	ctx := context.Background()
	j := NewNpcJournal(s)

	n := &npc.Npc{
		Name:      field.New("Lucan Amakiir"),
		Gender:    field.Generated(npc.Masculine),
		Age:       field.Generated(npc.Age{Stage: npc.Elderly, Years: 540}),
		Size:      field.Generated(npc.Size{Category: npc.Medium, Height: 66, Weight: 130}),
		Species:   field.Generated(npc.HalfElf),
		Ethnicity: field.Generated(npc.Elvish),
	}
	if err := j.Save(ctx, n); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := j.Save(ctx, n); err != journal.ErrAlreadySaved {
		t.Errorf("Expected ErrAlreadySaved, got %v", err)
	}

	got, err := j.Load(ctx, "lucan amakiir")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected saved NPC")
	}
	if got.Details() != n.Details() {
		t.Errorf("Details differ:\n%s\n---\n%s", got.Details(), n.Details())
	}
	if got.Name.IsLocked() {
		t.Error("Reloaded fields should be unlocked")
	}

	all, err := j.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 NPC, got %d", len(all))
	}

	names, err := j.Names(ctx, "Luc", 5)
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if len(names) != 1 || names[0] != "Lucan Amakiir" {
		t.Errorf("Unexpected names %v", names)
	}

	missing, err := j.Load(ctx, "Nobody")
	if err != nil || missing != nil {
		t.Errorf("Expected nil, nil for missing NPC, got %v, %v", missing, err)
	}
}

func TestPing(t *testing.T) {
	s := newTestStore(t)
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.Ping(ctx)
	if err != nil {
		t.Errorf("Ping failed: %v", err)
	}
}

func newTestStore(t *testing.T) *Store {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return s
}
