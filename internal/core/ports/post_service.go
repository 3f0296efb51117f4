package ports

import (
	"context"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

// PostDraft carries the create/update payload for a blog post. Nil fields
// were absent from the request body, which is distinct from present but
// empty: an empty title falls back to a default, a missing one is invalid
// on create and left untouched on update.
type PostDraft struct {
	Title       *string
	Content     *string
	Permissions *string
}

// PostService defines blog post use-cases. viewer/author is nil for
// anonymous requests.
type PostService interface {
	Create(ctx context.Context, author *domain.Identity, draft PostDraft) (*domain.Post, error)
	Get(ctx context.Context, viewer *domain.Identity, id string) (*domain.Post, error)
	Update(ctx context.Context, author *domain.Identity, id string, draft PostDraft) (*domain.Post, error)
	Delete(ctx context.Context, author *domain.Identity, id string) error
	List(ctx context.Context, viewer *domain.Identity) ([]domain.Post, error)
}
