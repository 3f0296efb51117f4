package ports

import (
	"context"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

// PostRepository defines the interface for blog post persistence.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error

	// FindByID returns domain.ErrPostNotFound when no row matches.
	FindByID(ctx context.Context, id string) (*domain.Post, error)

	// Update rewrites the mutable columns of an existing post.
	Update(ctx context.Context, post *domain.Post) error

	// DeleteByAuthor removes the post only when both id and author match
	// (author case-insensitively). Returns domain.ErrPostNotFound when no
	// row was deleted.
	DeleteByAuthor(ctx context.Context, id, author string) error

	// ListVisible returns every post the viewer may see in list results,
	// ordered by updated date descending. viewer is the requesting
	// username, or "" for anonymous requests.
	ListVisible(ctx context.Context, viewer string) ([]domain.Post, error)
}
