package repository

import (
	"context"
	"net/url"
	"strings"

	"glutools-directory/internal/db"
	"glutools-directory/internal/models"
)

const placeholderURL = "https://via.placeholder.com/400x300?text="

type UploadInput struct {
	ToolID     string
	FileName   string
	FileType   string
	FileSize   int64
	AuthorName string
}

type Uploads struct {
	*Collection[models.Upload]
}

func NewUploads(store db.KeyValueStore) *Uploads {
	return &Uploads{NewCollection[models.Upload](store, KeyUploads, "Upload")}
}

func (r *Uploads) ListByTool(ctx context.Context, toolID string) ([]models.Upload, error) {
	return r.Filter(ctx, func(u models.Upload) bool {
		return u.ToolID == toolID
	})
}

func (r *Uploads) Create(ctx context.Context, in UploadInput) (models.Upload, error) {
	if in.ToolID == "" || in.FileName == "" || in.AuthorName == "" {
		return models.Upload{}, missingFields()
	}

	return r.Append(ctx, models.Upload{
		ID:         newID(),
		ToolID:     in.ToolID,
		FileName:   in.FileName,
		FileURL:    PlaceholderURL(in.FileName),
		FileType:   in.FileType,
		FileSize:   in.FileSize,
		AuthorName: in.AuthorName,
		CreatedAt:  now(),
	})
}

func (r *Uploads) Delete(ctx context.Context, id string) error {
	return r.Remove(ctx, id)
}

// PlaceholderURL returns an image URL captioned with the file name. Spaces
// are encoded as %20 rather than '+'.
func PlaceholderURL(fileName string) string {
	return placeholderURL + strings.ReplaceAll(url.QueryEscape(fileName), "+", "%20")
}
