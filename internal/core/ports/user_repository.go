package ports

import (
	"context"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	// Create persists a new user. A *domain.ConflictError is returned when
	// the store's uniqueness constraints reject the row.
	Create(ctx context.Context, user *domain.User) error

	// FindByIdentifier looks a user up by email or username,
	// case-insensitively. Returns domain.ErrUserNotFound when no row matches.
	FindByIdentifier(ctx context.Context, emailOrUsername string) (*domain.User, error)

	// TakenFields reports which of the given email and username already
	// exist (case-insensitively), as a subset of {"username", "email"}.
	TakenFields(ctx context.Context, email, username string) ([]string, error)

	// UpdatePassword replaces the stored password hash for username.
	UpdatePassword(ctx context.Context, username, passwordHash string) error
}
