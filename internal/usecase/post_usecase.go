package usecase

import (
	"context"
	"time"

	"quill/internal/domain/entity"
)

// CreatePostInput carries the fields for post creation.
type CreatePostInput struct {
	Title    string `json:"title" validate:"required,min=3"`
	Content  string `json:"content" validate:"required,min=10"`
	AuthorID int64  `json:"authorId" validate:"required"`
}

// UpdatePostInput is a partial update; only non-nil fields are applied.
type UpdatePostInput struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=3"`
	Content   *string `json:"content,omitempty" validate:"omitempty,min=10"`
	Published *bool   `json:"published,omitempty"`
}

// PostView is the outward representation of a post with its author's
// public view attached.
type PostView struct {
	ID        int64        `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Published bool         `json:"published"`
	AuthorID  int64        `json:"authorId"`
	Author    *AccountView `json:"author,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// NewPostView maps a domain Post onto its outward view.
func NewPostView(post *entity.Post) *PostView {
	if post == nil {
		return nil
	}

	return &PostView{
		ID:        post.ID,
		Title:     post.Title,
		Content:   post.Content,
		Published: post.Published,
		AuthorID:  post.AuthorID,
		Author:    NewAccountView(post.Author),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// PostUsecase is the service-layer contract for post operations.
type PostUsecase interface {
	// Create persists a post for an existing author and returns it with the author attached.
	Create(ctx context.Context, input *CreatePostInput) (*PostView, error)

	// GetByID returns a post with its author.
	GetByID(ctx context.Context, id int64) (*PostView, error)

	// List returns every post with its author, in store order.
	List(ctx context.Context) ([]*PostView, error)

	// Update applies a partial update and returns the post with its author.
	Update(ctx context.Context, id int64, input *UpdatePostInput) (*PostView, error)

	// Delete removes the post.
	Delete(ctx context.Context, id int64) error
}
