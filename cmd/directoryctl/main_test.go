package main

import (
	"bytes"
	"context"
	"testing"

	"glutools-directory/internal/db"
	"glutools-directory/internal/models"
	"glutools-directory/internal/repository"
	"glutools-directory/internal/security"
)

func TestRehashPasswords(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	admins := repository.NewAdmins(store, security.HashPassword)

	hashed, err := security.HashPassword("already-hashed")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := admins.Save(ctx, []models.Admin{
		{ID: "1", Name: "GLU Admin", Email: "admin@glutools.com", Password: "admin123", IsSuperAdmin: true},
		{ID: "2", Name: "Docent", Email: "t@glu.nl", Password: hashed},
	}); err != nil {
		t.Fatalf("save: %v", err)
	}

	n, err := rehashPasswords(ctx, admins)
	if err != nil {
		t.Fatalf("rehash: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 rehashed password, got %d", n)
	}

	list, err := admins.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !security.IsHashed(list[0].Password) {
		t.Fatalf("plaintext password left in place: %q", list[0].Password)
	}
	if !security.ComparePasswords(list[0].Password, "admin123") {
		t.Fatalf("rehashed password no longer verifies")
	}
	if list[1].Password != hashed || !security.ComparePasswords(list[1].Password, "already-hashed") {
		t.Fatalf("existing hash was changed")
	}

	before, _, _ := store.Get(ctx, repository.KeyAdmins)
	n, err = rehashPasswords(ctx, admins)
	if err != nil {
		t.Fatalf("second rehash: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected nothing to rehash, got %d", n)
	}
	after, _, _ := store.Get(ctx, repository.KeyAdmins)
	if !bytes.Equal(before, after) {
		t.Fatalf("second run rewrote the admins collection")
	}
}

func TestRehashPasswordsEmptyStore(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()

	n, err := rehashPasswords(ctx, repository.NewAdmins(store, security.HashPassword))
	if err != nil || n != 0 {
		t.Fatalf("expected no-op, got n=%d err=%v", n, err)
	}
	if _, ok, _ := store.Get(ctx, repository.KeyAdmins); ok {
		t.Fatalf("empty store should not gain an admins key")
	}
}
