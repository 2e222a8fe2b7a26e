package repository

import (
	"context"
	"errors"
	"testing"

	"glutools-directory/internal/db"
	"glutools-directory/internal/models"
)

func fakeHash(p string) (string, error) { return "hashed:" + p, nil }

func seededAdmins(t *testing.T) *Admins {
	t.Helper()
	admins := NewAdmins(db.NewMemoryStore(), fakeHash)
	err := admins.Save(context.Background(), []models.Admin{
		{ID: "1", Name: "GLU Admin", Email: "admin@glutools.com", Password: "hashed:admin123", IsSuperAdmin: true},
	})
	if err != nil {
		t.Fatalf("seed admins: %v", err)
	}
	return admins
}

func TestAdminsCreate(t *testing.T) {
	ctx := context.Background()
	admins := seededAdmins(t)

	created, err := admins.Create(ctx, AdminInput{Name: "Docent", Email: "t@glu.nl", Password: "secret"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.IsSuperAdmin {
		t.Fatalf("new admins must not be super-admins")
	}
	if created.Password != "hashed:secret" {
		t.Fatalf("password not hashed: %q", created.Password)
	}

	_, err = admins.Create(ctx, AdminInput{Name: "Dup", Email: "t@glu.nl", Password: "x"})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected conflict on duplicate email, got %v", err)
	}

	_, err = admins.Create(ctx, AdminInput{Name: "No password", Email: "n@glu.nl"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAdminsUpdate(t *testing.T) {
	ctx := context.Background()
	admins := seededAdmins(t)
	other, _ := admins.Create(ctx, AdminInput{Name: "Docent", Email: "t@glu.nl", Password: "secret"})

	_, err := admins.Update(ctx, other.ID, AdminUpdate{Email: strp("admin@glutools.com")})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected email collision, got %v", err)
	}

	updated, err := admins.Update(ctx, other.ID, AdminUpdate{Email: strp("t@glu.nl"), Password: strp("new")})
	if err != nil {
		t.Fatalf("update with own email: %v", err)
	}
	if updated.Password != "hashed:new" || updated.Name != "Docent" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	unchanged, err := admins.Update(ctx, other.ID, AdminUpdate{})
	if err != nil || unchanged.Name != updated.Name || unchanged.Email != updated.Email || unchanged.Password != updated.Password {
		t.Fatalf("empty update changed record: %+v err=%v", unchanged, err)
	}

	var nf *NotFoundError
	if _, err := admins.Update(ctx, "missing", AdminUpdate{Name: strp("x")}); !errors.As(err, &nf) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAdminsDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("super-admin is protected", func(t *testing.T) {
		admins := seededAdmins(t)
		_, _ = admins.Create(ctx, AdminInput{Name: "Docent", Email: "t@glu.nl", Password: "secret"})

		var forbidden *ForbiddenError
		if err := admins.Delete(ctx, "1"); !errors.As(err, &forbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("last admin is protected", func(t *testing.T) {
		admins := NewAdmins(db.NewMemoryStore(), fakeHash)
		only, _ := admins.Create(ctx, AdminInput{Name: "Only", Email: "o@glu.nl", Password: "x"})

		var forbidden *ForbiddenError
		if err := admins.Delete(ctx, only.ID); !errors.As(err, &forbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
		if err := admins.Delete(ctx, only.ID); err == nil {
			t.Fatalf("admin was removed")
		}
	})

	t.Run("regular admin", func(t *testing.T) {
		admins := seededAdmins(t)
		other, _ := admins.Create(ctx, AdminInput{Name: "Docent", Email: "t@glu.nl", Password: "secret"})

		if err := admins.Delete(ctx, other.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		var nf *NotFoundError
		if err := admins.Delete(ctx, other.ID); !errors.As(err, &nf) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}
