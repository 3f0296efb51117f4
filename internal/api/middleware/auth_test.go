package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

type stubVerifier struct {
	identities map[string]*domain.Identity
}

func (v *stubVerifier) Verify(_ context.Context, token string) (*domain.Identity, error) {
	ident, ok := v.identities[token]
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	return ident, nil
}

func newVerifier() *stubVerifier {
	return &stubVerifier{identities: map[string]*domain.Identity{
		"good-token": {Username: "alice", Email: "alice@example.com"},
	}}
}

func testContext(token string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthenticate_Success(t *testing.T) {
	c, _ := testContext("good-token")

	var seen *domain.Identity
	handler := Authenticate(newVerifier())(func(c echo.Context) error {
		seen = IdentityFromContext(c)
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if seen == nil || seen.Username != "alice" {
		t.Fatalf("expected identity in context, got %+v", seen)
	}
}

func TestAuthenticate_MissingCookie(t *testing.T) {
	c, _ := testContext("")

	handler := Authenticate(newVerifier())(func(c echo.Context) error {
		t.Fatalf("next should not run")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrNoToken) {
		t.Fatalf("expected ErrNoToken, got %v", err)
	}
}

func TestAuthenticate_BadToken(t *testing.T) {
	c, _ := testContext("bad-token")

	handler := Authenticate(newVerifier())(func(c echo.Context) error {
		t.Fatalf("next should not run")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestIdentify_ResolvesViewer(t *testing.T) {
	c, _ := testContext("good-token")

	var seen *domain.Identity
	handler := Identify(newVerifier())(func(c echo.Context) error {
		seen = IdentityFromContext(c)
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if seen == nil || seen.Username != "alice" {
		t.Fatalf("expected identity in context, got %+v", seen)
	}
}

func TestIdentify_ContinuesAnonymously(t *testing.T) {
	for _, token := range []string{"", "bad-token"} {
		c, _ := testContext(token)

		ran := false
		handler := Identify(newVerifier())(func(c echo.Context) error {
			ran = true
			if IdentityFromContext(c) != nil {
				t.Fatalf("expected anonymous viewer for token %q", token)
			}
			return nil
		})

		if err := handler(c); err != nil {
			t.Fatalf("middleware error for token %q: %v", token, err)
		}
		if !ran {
			t.Fatalf("next should run for token %q", token)
		}
	}
}
