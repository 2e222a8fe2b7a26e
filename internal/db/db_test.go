package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func exerciseStore(t *testing.T, store KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "subjects"); err != nil || ok {
		t.Fatalf("get missing key: ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "subjects", json.RawMessage(`[{"id":"design"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "subjects", json.RawMessage(`[{"id":"video"}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	value, ok, err := store.Get(ctx, "subjects")
	if err != nil || !ok {
		t.Fatalf("get after set: ok=%v err=%v", ok, err)
	}
	if string(value) != `[{"id":"video"}]` {
		t.Fatalf("expected last write to win, got %s", value)
	}

	if err := store.Delete(ctx, "subjects"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "subjects"); ok {
		t.Fatalf("key still present after delete")
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	raw := json.RawMessage(`[1]`)
	_ = store.Set(ctx, "k", raw)
	raw[1] = '2'

	value, _, _ := store.Get(ctx, "k")
	if string(value) != `[1]` {
		t.Fatalf("stored value aliased caller slice: %s", value)
	}
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "directory_test.db")

	store, err := Open(ctx, "sqlite", dbPath)
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	defer store.Close()

	exerciseStore(t, store)
}

func TestSQLiteStoreMigrationsAreRepeatable(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "directory_test.db")

	first, err := Open(ctx, "sqlite", dbPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Set(ctx, "admins", json.RawMessage(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	first.Close()

	second, err := Open(ctx, "sqlite", dbPath)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	if _, ok, err := second.Get(ctx, "admins"); err != nil || !ok {
		t.Fatalf("value lost across reopen: ok=%v err=%v", ok, err)
	}
}

func TestSQLiteStoresOpenConcurrently(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	const n = 4
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			store, err := Open(ctx, "sqlite", filepath.Join(dir, fmt.Sprintf("store_%d.db", i)))
			if err != nil {
				errs <- err
				return
			}
			defer store.Close()
			errs <- store.Set(ctx, "subjects", json.RawMessage(`[]`))
		}(i)
	}

	for i := 0; i < n; i++ {
		if err := <-errs; err != nil {
			t.Fatalf("concurrent open: %v", err)
		}
	}
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}

	store, err := Open(context.Background(), "redis", url)
	if err != nil {
		t.Fatalf("open redis store: %v", err)
	}
	defer store.Close()

	exerciseStore(t, store)
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, err := Open(context.Background(), "mongo", ""); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
