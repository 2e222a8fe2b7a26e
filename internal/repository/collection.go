package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"glutools-directory/internal/db"

	"github.com/google/uuid"
)

// Store keys, one per collection.
const (
	KeySubjects           = "subjects"
	KeyTools              = "ai_tools"
	KeyAdmins             = "admins"
	KeyReviews            = "reviews"
	KeyUploads            = "uploads"
	KeyContactSubmissions = "contact_submissions"
)

var (
	newID = uuid.NewString
	now   = func() time.Time { return time.Now().UTC() }
)

type Keyed interface {
	Key() string
}

// Collection is a JSON array of records stored under a single key. Every
// write loads the whole array and stores it back; concurrent writers to the
// same key can overwrite each other.
type Collection[T Keyed] struct {
	store  db.KeyValueStore
	key    string
	entity string
}

func NewCollection[T Keyed](store db.KeyValueStore, key, entity string) *Collection[T] {
	return &Collection[T]{store: store, key: key, entity: entity}
}

func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.key, err)
	}

	items := []T{}
	if !ok {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Exists reports whether the collection key is present, even when it holds
// an empty array.
func (c *Collection[T]) Exists(ctx context.Context) (bool, error) {
	_, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", c.key, err)
	}
	return ok, nil
}

func (c *Collection[T]) Filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	items, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	out := []T{}
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (c *Collection[T]) Find(ctx context.Context, id string) (T, error) {
	var zero T

	items, err := c.List(ctx)
	if err != nil {
		return zero, err
	}
	for _, item := range items {
		if item.Key() == id {
			return item, nil
		}
	}
	return zero, &NotFoundError{Entity: c.entity, ID: id}
}

func (c *Collection[T]) Append(ctx context.Context, item T) (T, error) {
	items, err := c.List(ctx)
	if err != nil {
		return item, err
	}

	items = append(items, item)
	if err := c.Save(ctx, items); err != nil {
		return item, err
	}
	return item, nil
}

// Update applies mutate to the record with the given id and persists the
// collection. If mutate returns an error nothing is written.
func (c *Collection[T]) Update(ctx context.Context, id string, mutate func(items []T, i int) error) (T, error) {
	var zero T

	items, err := c.List(ctx)
	if err != nil {
		return zero, err
	}

	idx := -1
	for i, item := range items {
		if item.Key() == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return zero, &NotFoundError{Entity: c.entity, ID: id}
	}

	if err := mutate(items, idx); err != nil {
		return zero, err
	}
	if err := c.Save(ctx, items); err != nil {
		return zero, err
	}
	return items[idx], nil
}

func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	items, err := c.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]T, 0, len(items))
	for _, item := range items {
		if item.Key() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return &NotFoundError{Entity: c.entity, ID: id}
	}
	return c.Save(ctx, kept)
}

func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("write %s: %w", c.key, err)
	}
	return nil
}
