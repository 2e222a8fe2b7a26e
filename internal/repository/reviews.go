package repository

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"glutools-directory/internal/db"
	"glutools-directory/internal/models"
)

const (
	minRating = 1
	maxRating = 5
)

// Rating accepts either a JSON number or a numeric string. Fractions are
// truncated toward zero and the result is clamped to [1,5].
type Rating int

func (r *Rating) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return &ValidationError{Msg: fmt.Sprintf("invalid rating %s", data)}
	}
	// Clamp before converting; out-of-range float to int conversions are
	// implementation-defined.
	*r = Rating(math.Max(minRating, math.Min(maxRating, math.Trunc(f))))
	return nil
}

func (r Rating) clamp() int {
	v := int(r)
	if v < minRating {
		return minRating
	}
	if v > maxRating {
		return maxRating
	}
	return v
}

type ReviewInput struct {
	ToolID     string  `json:"tool_id"`
	AuthorName string  `json:"author_name"`
	Rating     *Rating `json:"rating"`
	Comment    string  `json:"comment"`
}

type Reviews struct {
	*Collection[models.Review]
}

func NewReviews(store db.KeyValueStore) *Reviews {
	return &Reviews{NewCollection[models.Review](store, KeyReviews, "Review")}
}

func (r *Reviews) ListByTool(ctx context.Context, toolID string) ([]models.Review, error) {
	return r.Filter(ctx, func(rv models.Review) bool {
		return rv.ToolID == toolID
	})
}

func (r *Reviews) Create(ctx context.Context, in ReviewInput) (models.Review, error) {
	if in.ToolID == "" || in.Rating == nil || in.Comment == "" {
		return models.Review{}, missingFields()
	}

	author := in.AuthorName
	if author == "" {
		author = "Anonymous"
	}

	return r.Append(ctx, models.Review{
		ID:           newID(),
		ToolID:       in.ToolID,
		AuthorName:   author,
		Rating:       in.Rating.clamp(),
		Comment:      in.Comment,
		CreatedAt:    now(),
		HelpfulCount: 0,
	})
}

func (r *Reviews) MarkHelpful(ctx context.Context, id string) (models.Review, error) {
	return r.Update(ctx, id, func(reviews []models.Review, i int) error {
		if reviews[i].HelpfulCount < 0 {
			reviews[i].HelpfulCount = 0
		}
		reviews[i].HelpfulCount++
		return nil
	})
}

func (r *Reviews) Delete(ctx context.Context, id string) error {
	return r.Remove(ctx, id)
}
