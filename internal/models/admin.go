package models

import "time"

type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"password"` // bcrypt hash; older records may hold plaintext
	CreatedAt    time.Time `json:"created_at"`
	IsSuperAdmin bool      `json:"is_super_admin"`
}

// AdminProfile is the outward shape of an Admin. It never carries a password.
type AdminProfile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	IsSuperAdmin bool      `json:"is_super_admin"`
}

func (a Admin) Profile() AdminProfile {
	return AdminProfile{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		CreatedAt:    a.CreatedAt,
		IsSuperAdmin: a.IsSuperAdmin,
	}
}

func Profiles(admins []Admin) []AdminProfile {
	out := make([]AdminProfile, 0, len(admins))
	for _, a := range admins {
		out = append(out, a.Profile())
	}
	return out
}

func (a Admin) Key() string { return a.ID }
