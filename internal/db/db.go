package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// KeyValueStore holds one JSON document per key. There are no transactions:
// callers read a whole value, change it and write it back, and the last
// writer wins.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open returns the store for driver. SQL drivers get their schema migrated
// before the store is handed out.
func Open(ctx context.Context, driver, dsn string) (KeyValueStore, error) {
	switch driver {
	case "memory":
		return NewMemoryStore(), nil
	case "redis":
		return OpenRedis(ctx, dsn)
	case "postgres", "sqlite3", "sqlite":
		return OpenSQL(ctx, driver, dsn)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

type SQLStore struct {
	db     *sql.DB
	driver string
}

func OpenSQL(ctx context.Context, driver, dsn string) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if driver != "postgres" {
		// SQLite allows a single writer; serialize through one connection.
		db.SetMaxOpenConns(1)
	}

	if err := RunMigrations(ctx, db, driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate kv_store: %w", err)
	}

	return &SQLStore{db: db, driver: driver}, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	query := fmt.Sprintf("SELECT value FROM kv_store WHERE key = %s", s.placeholder(1))

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return json.RawMessage(value), true, nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	query := fmt.Sprintf(
		"INSERT INTO kv_store (key, value) VALUES (%s, %s) ON CONFLICT (key) DO UPDATE SET value = excluded.value",
		s.placeholder(1), s.placeholder(2),
	)
	_, err := s.db.ExecContext(ctx, query, key, string(value))
	return err
}

func (s *SQLStore) Delete(ctx context.Context, key string) error {
	query := fmt.Sprintf("DELETE FROM kv_store WHERE key = %s", s.placeholder(1))
	_, err := s.db.ExecContext(ctx, query, key)
	return err
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) placeholder(n int) string {
	if s.driver == "postgres" {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}
