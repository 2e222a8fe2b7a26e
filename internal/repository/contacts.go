package repository

import (
	"context"

	"glutools-directory/internal/db"
	"glutools-directory/internal/models"
)

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type Contacts struct {
	*Collection[models.ContactSubmission]
}

func NewContacts(store db.KeyValueStore) *Contacts {
	return &Contacts{NewCollection[models.ContactSubmission](store, KeyContactSubmissions, "Submission")}
}

func (r *Contacts) Create(ctx context.Context, in ContactInput) (models.ContactSubmission, error) {
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return models.ContactSubmission{}, missingFields()
	}

	return r.Append(ctx, models.ContactSubmission{
		ID:      newID(),
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
		Date:    now(),
	})
}
