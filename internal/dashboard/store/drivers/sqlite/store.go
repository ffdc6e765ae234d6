package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"reflect"

	_ "modernc.org/sqlite"
)

// Store persists documents in a single sqlite table:
// documents(key TEXT PRIMARY KEY, doc TEXT, updated_at). Every Set is an
// upsert of the full document, matching the no-partial-write contract.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewStore(dsn string, logger *slog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Get reads and decodes the document at key into out. Absent keys and
// malformed documents leave out untouched and log a diagnostic; Get never
// fails from the caller's perspective.
func (s *Store) Get(ctx context.Context, key string, out any) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT doc FROM documents WHERE key = ?`, key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return
	}
	if err != nil {
		s.logger.Warn("document read failed, keeping default", "key", key, "error", err)
		return
	}

	// Decode into a scratch value first. Unmarshal can partially populate
	// its target before hitting a type mismatch, and out must keep the
	// caller's default unless the whole document decodes.
	dst := reflect.ValueOf(out)
	if dst.Kind() != reflect.Pointer || dst.IsNil() {
		s.logger.Warn("document target is not a pointer, keeping default", "key", key)
		return
	}
	scratch := reflect.New(dst.Elem().Type())
	if err := json.Unmarshal(raw, scratch.Interface()); err != nil {
		s.logger.Warn("document is malformed, keeping default", "key", key, "error", err)
		return
	}
	dst.Elem().Set(scratch.Elem())
}

// Set serializes doc and overwrites the document at key.
func (s *Store) Set(ctx context.Context, key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (key, doc, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET doc = excluded.doc, updated_at = excluded.updated_at
	`, key, raw)
	return err
}
