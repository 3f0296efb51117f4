package ports

import (
	"context"
	"time"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

// SignupInput carries the account creation payload.
type SignupInput struct {
	Email                string
	Username             string
	Password             string
	PasswordConfirmation string
}

// AuthService defines account and session use-cases.
type AuthService interface {
	// Signup creates a new account. Returns *domain.ConflictError listing
	// the colliding fields when username or email is already taken.
	Signup(ctx context.Context, input SignupInput) (*domain.Identity, error)

	// Login verifies credentials by email or username and issues a signed
	// session token on success.
	Login(ctx context.Context, identifier, password string) (*domain.Identity, string, error)

	// Verify validates a session token and returns the identity it asserts.
	Verify(ctx context.Context, token string) (*domain.Identity, error)

	// Logout revokes the given token. Passing an invalid or already revoked
	// token is not an error.
	Logout(ctx context.Context, token string) error

	// UpdatePassword rehashes and stores a new password for the current user.
	UpdatePassword(ctx context.Context, current *domain.Identity, password, confirmation string) error

	// TokenTTL is the lifetime of issued tokens, used by the transport
	// layer to set the cookie max-age.
	TokenTTL() time.Duration
}
