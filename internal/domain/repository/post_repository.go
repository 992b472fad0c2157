package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"
)

// ErrPostNotFound is a domain-specific error returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines the standard operations for post persistence.
// Reads preload the author association.
type PostRepository interface {
	// FindByID retrieves a single post with its author.
	FindByID(ctx context.Context, id int64) (*entity.Post, error)

	// FindAll retrieves every post with its author, in store order.
	FindAll(ctx context.Context) ([]*entity.Post, error)

	// Create persists a new post entity to the storage.
	Create(ctx context.Context, post *entity.Post) error

	// Update modifies an existing post entity in the storage.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes the post with the given ID from the storage.
	Delete(ctx context.Context, id int64) error
}
