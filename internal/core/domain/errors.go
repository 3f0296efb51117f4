package domain

import (
	"errors"
	"strings"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("blog post not found")
	ErrLoginRequired      = errors.New("login required")
	ErrNotAuthor          = errors.New("only the author may modify this post")
	ErrNoToken            = errors.New("missing access token")
	ErrTokenInvalid       = errors.New("invalid or expired token")
)

// ConflictError reports which unique account fields are already taken.
// Fields holds "username" and/or "email".
type ConflictError struct {
	Fields []string
}

func (e *ConflictError) Error() string {
	return "already taken: " + strings.Join(e.Fields, ", ")
}
