package repository

import (
	"context"

	"glutools-directory/internal/db"
	"glutools-directory/internal/models"
)

type AdminInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminUpdate carries the fields of an admin edit. A nil field is left as is.
type AdminUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type Admins struct {
	*Collection[models.Admin]
	hash func(password string) (string, error)
}

// NewAdmins returns the admin repository. hash turns a plaintext password
// into its stored form.
func NewAdmins(store db.KeyValueStore, hash func(string) (string, error)) *Admins {
	return &Admins{
		Collection: NewCollection[models.Admin](store, KeyAdmins, "Admin"),
		hash:       hash,
	}
}

func (r *Admins) Create(ctx context.Context, in AdminInput) (models.Admin, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return models.Admin{}, &ValidationError{Msg: "Name, email, and password are required"}
	}

	admins, err := r.List(ctx)
	if err != nil {
		return models.Admin{}, err
	}
	for _, a := range admins {
		if a.Email == in.Email {
			return models.Admin{}, emailTaken()
		}
	}

	hashed, err := r.hash(in.Password)
	if err != nil {
		return models.Admin{}, err
	}

	admin := models.Admin{
		ID:           newID(),
		Name:         in.Name,
		Email:        in.Email,
		Password:     hashed,
		CreatedAt:    now(),
		IsSuperAdmin: false,
	}
	admins = append(admins, admin)
	if err := r.Save(ctx, admins); err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}

func (r *Admins) Update(ctx context.Context, id string, in AdminUpdate) (models.Admin, error) {
	for _, field := range []*string{in.Name, in.Email, in.Password} {
		if field != nil && *field == "" {
			return models.Admin{}, &ValidationError{Msg: "name, email and password cannot be empty"}
		}
	}

	var hashed string
	if in.Password != nil {
		var err error
		if hashed, err = r.hash(*in.Password); err != nil {
			return models.Admin{}, err
		}
	}

	return r.Collection.Update(ctx, id, func(admins []models.Admin, i int) error {
		if in.Email != nil && *in.Email != admins[i].Email {
			for _, a := range admins {
				if a.Email == *in.Email && a.ID != id {
					return emailTaken()
				}
			}
		}

		a := &admins[i]
		if in.Name != nil {
			a.Name = *in.Name
		}
		if in.Email != nil {
			a.Email = *in.Email
		}
		if in.Password != nil {
			a.Password = hashed
		}
		return nil
	})
}

// Delete removes an admin. The super-admin and the last remaining admin
// cannot be removed.
func (r *Admins) Delete(ctx context.Context, id string) error {
	admins, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Admin, 0, len(admins))
	var target *models.Admin
	for i := range admins {
		if admins[i].ID == id {
			target = &admins[i]
			continue
		}
		kept = append(kept, admins[i])
	}

	if target == nil {
		return &NotFoundError{Entity: "Admin", ID: id}
	}
	if target.IsSuperAdmin {
		return &ForbiddenError{Msg: "Cannot delete super admin account"}
	}
	if len(kept) == 0 {
		return &ForbiddenError{Msg: "Cannot delete the last admin account"}
	}
	return r.Save(ctx, kept)
}

func emailTaken() error {
	return &ConflictError{Msg: "Admin with this email already exists"}
}
