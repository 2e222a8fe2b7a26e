package repository

import (
	"context"

	"glutools-directory/internal/db"
	"glutools-directory/internal/models"
)

// ToolInput is the body of a tool create or update request. A nil field was
// absent from the request.
type ToolInput struct {
	SubjectID     *string   `json:"subject_id"`
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Advantages    *[]string `json:"advantages"`
	Disadvantages *[]string `json:"disadvantages"`
	ImageURL      *string   `json:"image_url"`
	LinkURL       *string   `json:"link_url"`
}

type Tools struct {
	*Collection[models.AITool]
}

func NewTools(store db.KeyValueStore) *Tools {
	return &Tools{NewCollection[models.AITool](store, KeyTools, "Tool")}
}

func (r *Tools) ListBySubject(ctx context.Context, subjectID string) ([]models.AITool, error) {
	return r.Filter(ctx, func(t models.AITool) bool {
		return t.SubjectID == subjectID
	})
}

func (r *Tools) Create(ctx context.Context, in ToolInput) (models.AITool, error) {
	if value(in.SubjectID) == "" || value(in.Name) == "" || value(in.Description) == "" {
		return models.AITool{}, missingFields()
	}

	tool := models.AITool{
		ID:            newID(),
		SubjectID:     *in.SubjectID,
		Name:          *in.Name,
		Description:   *in.Description,
		Advantages:    list(in.Advantages),
		Disadvantages: list(in.Disadvantages),
		ImageURL:      value(in.ImageURL),
		LinkURL:       value(in.LinkURL),
	}
	return r.Append(ctx, tool)
}

// Update applies every field present in the input. Required text fields may
// not be cleared.
func (r *Tools) Update(ctx context.Context, id string, in ToolInput) (models.AITool, error) {
	for _, field := range []*string{in.SubjectID, in.Name, in.Description} {
		if field != nil && *field == "" {
			return models.AITool{}, &ValidationError{Msg: "subject_id, name and description cannot be empty"}
		}
	}

	return r.Collection.Update(ctx, id, func(tools []models.AITool, i int) error {
		t := &tools[i]
		if in.SubjectID != nil {
			t.SubjectID = *in.SubjectID
		}
		if in.Name != nil {
			t.Name = *in.Name
		}
		if in.Description != nil {
			t.Description = *in.Description
		}
		if in.Advantages != nil {
			t.Advantages = list(in.Advantages)
		}
		if in.Disadvantages != nil {
			t.Disadvantages = list(in.Disadvantages)
		}
		if in.ImageURL != nil {
			t.ImageURL = *in.ImageURL
		}
		if in.LinkURL != nil {
			t.LinkURL = *in.LinkURL
		}
		return nil
	})
}

func (r *Tools) Delete(ctx context.Context, id string) error {
	return r.Remove(ctx, id)
}

// AppendMissing adds every tool whose id is not yet stored and reports how
// many were added and the new collection size.
func (r *Tools) AppendMissing(ctx context.Context, catalog []models.AITool) (added, total int, err error) {
	tools, err := r.List(ctx)
	if err != nil {
		return 0, 0, err
	}

	existing := make(map[string]bool, len(tools))
	for _, t := range tools {
		existing[t.ID] = true
	}

	for _, t := range catalog {
		if existing[t.ID] {
			continue
		}
		existing[t.ID] = true
		t.Advantages = list(&t.Advantages)
		t.Disadvantages = list(&t.Disadvantages)
		tools = append(tools, t)
		added++
	}

	if added == 0 {
		return 0, len(tools), nil
	}
	if err := r.Save(ctx, tools); err != nil {
		return 0, 0, err
	}
	return added, len(tools), nil
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func list(items *[]string) []string {
	if items == nil || *items == nil {
		return []string{}
	}
	return *items
}
