// Package store provides SQLite-backed persistence for the Lorekeeper journal.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fentz26/lorekeeper/internal/fold"
	"github.com/fentz26/lorekeeper/internal/models"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store provides access to the journal SQLite database.
type Store struct {
	db *sql.DB
}

// New creates a new Store and runs migrations.
func New(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// migrate runs idempotent schema migrations.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS journal (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		folded TEXT NOT NULL,
		kind TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_journal_folded ON journal(folded);
	CREATE INDEX IF NOT EXISTS idx_journal_kind ON journal(kind);
	`

	_, err := s.db.Exec(schema)
	return err
}

// --- Journal Operations ---

// SaveEntry inserts a new journal entry. Names are unique under Unicode case
// folding, matching the in-memory journal.
func (s *Store) SaveEntry(ctx context.Context, name string, kind models.EntryKind, body []byte) (*models.JournalEntry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existing string
	err = tx.QueryRowContext(ctx, `SELECT id FROM journal WHERE folded = ?`, fold.String(name)).Scan(&existing)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("check existing entry: %w", err)
	}
	if existing != "" {
		return nil, ErrDuplicateName
	}

	now := time.Now().UTC()
	entry := &models.JournalEntry{
		ID:        uuid.New().String(),
		Name:      name,
		Kind:      kind,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO journal (id, name, folded, kind, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Name, fold.String(entry.Name), entry.Kind, string(entry.Body), entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return entry, nil
}

// GetEntryByName retrieves an entry by case-folded name.
func (s *Store) GetEntryByName(ctx context.Context, name string) (*models.JournalEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, kind, body, created_at, updated_at FROM journal WHERE folded = ?`,
		fold.String(strings.TrimSpace(name)),
	)
	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query entry: %w", err)
	}
	return entry, nil
}

// ListEntries returns all entries ordered by name, optionally filtered by kind.
func (s *Store) ListEntries(ctx context.Context, kind models.EntryKind) ([]models.JournalEntry, error) {
	query := `SELECT id, name, kind, body, created_at, updated_at FROM journal`
	var args []interface{}

	if kind != "" {
		query += ` WHERE kind = ?`
		args = append(args, kind)
	}
	query += ` ORDER BY folded`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// SearchNames returns up to limit names starting with prefix, ignoring case.
func (s *Store) SearchNames(ctx context.Context, prefix string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM journal WHERE folded LIKE ? ESCAPE '\' ORDER BY folded LIMIT ?`,
		escapeLike(fold.String(strings.TrimSpace(prefix)))+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEntry(row scanner) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	var body string
	if err := row.Scan(&entry.ID, &entry.Name, &entry.Kind, &body, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
		return nil, err
	}
	entry.Body = []byte(body)
	return &entry, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
