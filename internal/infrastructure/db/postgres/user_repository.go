package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, username, password, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query,
		user.Email, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		// The unique constraints are the authoritative guard against
		// concurrent signups slipping past the pre-check.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return &domain.ConflictError{Fields: []string{conflictField(pgErr.ConstraintName)}}
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// conflictField maps a users table constraint name to the API field name.
func conflictField(constraint string) string {
	if strings.Contains(constraint, "email") {
		return "email"
	}
	return "username"
}

func (r *UserRepository) FindByIdentifier(ctx context.Context, emailOrUsername string) (*domain.User, error) {
	// email and username are citext columns, so equality is already
	// case-insensitive.
	query := `SELECT email, username, password, created_at, updated_at
	          FROM users WHERE email = $1 OR username = $1`

	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, emailOrUsername).Scan(
		&user.Email, &user.Username, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) TakenFields(ctx context.Context, email, username string) ([]string, error) {
	query := `SELECT
	            EXISTS (SELECT 1 FROM users WHERE username = $1),
	            EXISTS (SELECT 1 FROM users WHERE email = $2)`

	var usernameTaken, emailTaken bool
	if err := r.db.QueryRowContext(ctx, query, username, email).Scan(&usernameTaken, &emailTaken); err != nil {
		return nil, fmt.Errorf("check unique fields: %w", err)
	}

	var taken []string
	if usernameTaken {
		taken = append(taken, "username")
	}
	if emailTaken {
		taken = append(taken, "email")
	}
	return taken, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	query := `UPDATE users SET password = $2, updated_at = now() WHERE username = $1`

	res, err := r.db.ExecContext(ctx, query, username, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
