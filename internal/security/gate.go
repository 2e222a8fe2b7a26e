package security

import (
	"context"
	"errors"

	"glutools-directory/internal/models"
	"glutools-directory/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
)

// Gate checks admin credentials and decides what an authenticated admin may
// do to other admin accounts.
type Gate struct {
	admins *repository.Admins
}

func NewGate(admins *repository.Admins) *Gate {
	return &Gate{admins: admins}
}

// Login returns the admin whose email and password both match.
func (g *Gate) Login(ctx context.Context, email, password string) (models.Admin, error) {
	if email == "" || password == "" {
		return models.Admin{}, &repository.ValidationError{Msg: "Email and password are required"}
	}

	admins, err := g.admins.List(ctx)
	if err != nil {
		return models.Admin{}, err
	}
	for _, a := range admins {
		if a.Email == email && ComparePasswords(a.Password, password) {
			return a, nil
		}
	}
	return models.Admin{}, ErrInvalidCredentials
}

// Caller resolves a session's admin id to the stored record. An admin that
// was deleted after logging in is no longer authenticated.
func (g *Gate) Caller(ctx context.Context, adminID string) (models.Admin, error) {
	if adminID == "" {
		return models.Admin{}, ErrUnauthenticated
	}

	admin, err := g.admins.Find(ctx, adminID)
	var nf *repository.NotFoundError
	if errors.As(err, &nf) {
		return models.Admin{}, ErrUnauthenticated
	}
	return admin, err
}

func CanCreateAdmin(caller models.Admin) bool {
	return caller.IsSuperAdmin
}

func CanEditAdmin(caller models.Admin, targetID string) bool {
	return caller.IsSuperAdmin || caller.ID == targetID
}

func CanDeleteAdmin(caller, target models.Admin) bool {
	return caller.IsSuperAdmin && !target.IsSuperAdmin && caller.ID != target.ID
}

func (g *Gate) CreateAdmin(ctx context.Context, caller models.Admin, in repository.AdminInput) (models.Admin, error) {
	if !CanCreateAdmin(caller) {
		return models.Admin{}, &repository.ForbiddenError{Msg: "Only super admins can create admin accounts"}
	}
	return g.admins.Create(ctx, in)
}

func (g *Gate) UpdateAdmin(ctx context.Context, caller models.Admin, id string, in repository.AdminUpdate) (models.Admin, error) {
	if _, err := g.admins.Find(ctx, id); err != nil {
		return models.Admin{}, err
	}
	if !CanEditAdmin(caller, id) {
		return models.Admin{}, &repository.ForbiddenError{Msg: "You can only edit your own account"}
	}
	return g.admins.Update(ctx, id, in)
}

func (g *Gate) DeleteAdmin(ctx context.Context, caller models.Admin, id string) error {
	target, err := g.admins.Find(ctx, id)
	if err != nil {
		return err
	}

	switch {
	case target.IsSuperAdmin:
		return &repository.ForbiddenError{Msg: "Cannot delete super admin account"}
	case target.ID == caller.ID:
		return &repository.ForbiddenError{Msg: "You cannot delete your own account"}
	case !CanDeleteAdmin(caller, target):
		return &repository.ForbiddenError{Msg: "Only super admins can delete admin accounts"}
	}
	return g.admins.Delete(ctx, id)
}
