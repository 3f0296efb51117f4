package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

// AccessTokenCookie is the cookie carrying the session token.
const AccessTokenCookie = "accessToken"

const identityKey = "identity"

// TokenVerifier is the interface the middleware uses to validate session
// tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Identity, error)
}

// Authenticate requires a valid session cookie: ErrNoToken (401) when the
// cookie is absent, ErrTokenInvalid (403) when the token does not verify.
// On success the identity is injected into the request context.
func Authenticate(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AccessTokenCookie)
			if err != nil || cookie.Value == "" {
				return domain.ErrNoToken
			}

			ident, err := verifier.Verify(c.Request().Context(), cookie.Value)
			if err != nil {
				return domain.ErrTokenInvalid
			}

			c.Set(identityKey, ident)
			return next(c)
		}
	}
}

// Identify resolves the viewer when a valid session cookie is present and
// continues regardless. Routes whose behaviour merely varies with
// authentication use this instead of Authenticate.
func Identify(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AccessTokenCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			if ident, err := verifier.Verify(c.Request().Context(), cookie.Value); err == nil {
				c.Set(identityKey, ident)
			}
			return next(c)
		}
	}
}

// IdentityFromContext returns the authenticated identity, or nil for
// anonymous requests.
func IdentityFromContext(c echo.Context) *domain.Identity {
	ident, _ := c.Get(identityKey).(*domain.Identity)
	return ident
}
