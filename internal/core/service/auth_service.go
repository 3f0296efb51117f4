package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell/blog-platform/internal/core/domain"
	"github.com/inkwell/blog-platform/internal/core/ports"
)

// bcryptCost matches the salt rounds used for every stored password.
const bcryptCost = 10

// TokenDenylist abstracts the revocation store (Redis). Revoked token ids
// stay listed until the token would have expired anyway.
type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthService implements account creation, login, token verification and
// revocation.
type AuthService struct {
	repo      ports.UserRepository
	denylist  TokenDenylist
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, denylist TokenDenylist, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 5 * time.Minute
	}
	return &AuthService{
		repo:      repo,
		denylist:  denylist,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*domain.Identity, error) {
	if input.Email == "" || input.Username == "" || input.Password == "" {
		return nil, domain.ErrValidation
	}
	if input.Password != input.PasswordConfirmation {
		return nil, fmt.Errorf("%w: password confirmation does not match", domain.ErrValidation)
	}

	// Report every colliding field up front. The uniqueness constraints in
	// the store remain the authoritative guard against concurrent signups;
	// the repository maps constraint violations to the same conflict error.
	taken, err := s.repo.TakenFields(ctx, input.Email, input.Username)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	if len(taken) > 0 {
		return nil, &domain.ConflictError{Fields: taken}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("signup: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("account created")
	return &domain.Identity{Username: user.Username, Email: user.Email}, nil
}

func (s *AuthService) Login(ctx context.Context, identifier, password string) (*domain.Identity, string, error) {
	if identifier == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", fmt.Errorf("login: sign token: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("login")
	return &domain.Identity{Username: user.Username, Email: user.Email}, token, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": user.Username,
		"email":    user.Email,
		"exp":      now.Add(s.tokenTTL).Unix(),
		"iat":      now.Unix(),
		"jti":      uuid.NewString(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	if jti, ok := claims["jti"].(string); ok && jti != "" {
		revoked, err := s.denylist.IsRevoked(ctx, jti)
		if err != nil {
			return nil, fmt.Errorf("verify: denylist: %w", err)
		}
		if revoked {
			return nil, domain.ErrTokenInvalid
		}
	}

	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)
	if username == "" {
		return nil, domain.ErrTokenInvalid
	}
	return &domain.Identity{Username: username, Email: email}, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		// An expired or garbage token needs no revocation. Logging out
		// twice is not an error.
		return nil
	}

	jti, _ := claims["jti"].(string)
	exp, expErr := claims.GetExpirationTime()
	if jti == "" || expErr != nil || exp == nil {
		return nil
	}

	if err := s.denylist.Revoke(ctx, jti, time.Until(exp.Time)); err != nil {
		// The cookie is cleared regardless; exposure is bounded by the
		// short token TTL.
		s.log.Warn().Err(err).Msg("failed to denylist token on logout")
	}
	return nil
}

func (s *AuthService) UpdatePassword(ctx context.Context, current *domain.Identity, password, confirmation string) error {
	if password == "" || password != confirmation {
		return fmt.Errorf("%w: password confirmation does not match", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("update password: hash: %w", err)
	}
	if err := s.repo.UpdatePassword(ctx, current.Username, string(hash)); err != nil {
		return err
	}

	s.log.Info().Str("username", current.Username).Msg("password updated")
	return nil
}

func (s *AuthService) parseToken(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
