package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS registry_slots (
	slot BLOB PRIMARY KEY,
	value BLOB NOT NULL
)`

// SQLiteBackend persists registry state in a SQLite database.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and ensures the schema.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Invocations are serialized by the host
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

// Begin starts a SQLite transaction.
func (b *SQLiteBackend) Begin(ctx context.Context) (Tx, error) {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &sqliteTx{ctx: ctx, tx: tx}, nil
}

// Close closes the SQLite handle.
func (b *SQLiteBackend) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}

// sqliteTx adapts a SQL transaction to registry storage. Storage has no
// error channel, so the first I/O failure is kept and returned by Commit.
type sqliteTx struct {
	ctx context.Context
	tx  *sql.Tx
	err error
}

func (t *sqliteTx) Get(key common.Hash) ([]byte, bool) {
	if t.err != nil {
		return nil, false
	}
	var value []byte
	err := t.tx.QueryRowContext(t.ctx, `SELECT value FROM registry_slots WHERE slot = ?`, key.Bytes()).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		t.err = fmt.Errorf("read slot %s: %w", key.Hex(), err)
		return nil, false
	}
	return value, true
}

func (t *sqliteTx) Set(key common.Hash, value []byte) {
	if t.err != nil {
		return
	}
	_, err := t.tx.ExecContext(t.ctx,
		`INSERT INTO registry_slots (slot, value) VALUES (?, ?)
		 ON CONFLICT(slot) DO UPDATE SET value = excluded.value`,
		key.Bytes(), value)
	if err != nil {
		t.err = fmt.Errorf("write slot %s: %w", key.Hex(), err)
	}
}

func (t *sqliteTx) Err() error {
	return t.err
}

func (t *sqliteTx) Commit() error {
	if t.err != nil {
		_ = t.tx.Rollback()
		return t.err
	}
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (t *sqliteTx) Rollback() error {
	return t.tx.Rollback()
}
