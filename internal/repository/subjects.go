package repository

import (
	"context"

	"glutools-directory/internal/db"
	"glutools-directory/internal/models"
)

type Subjects struct {
	*Collection[models.Subject]
}

func NewSubjects(store db.KeyValueStore) *Subjects {
	return &Subjects{NewCollection[models.Subject](store, KeySubjects, "Subject")}
}

// Create adds a subject under a caller-chosen slug. Slugs never change once
// stored, so a duplicate is a conflict rather than an update.
func (r *Subjects) Create(ctx context.Context, s models.Subject) (models.Subject, error) {
	if s.ID == "" || s.Name == "" {
		return models.Subject{}, missingFields()
	}

	if _, err := r.Find(ctx, s.ID); err == nil {
		return models.Subject{}, &ConflictError{Msg: "Subject with this id already exists"}
	} else if !isNotFound(err) {
		return models.Subject{}, err
	}

	return r.Append(ctx, s)
}
