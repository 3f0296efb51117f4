package domain

import (
	"strings"
	"time"
)

// Permission represents the visibility level of a blog post.
type Permission string

const (
	PermissionPublic   Permission = "public"
	PermissionUsers    Permission = "users"
	PermissionUnlisted Permission = "unlisted"
	PermissionPrivate  Permission = "private"
	PermissionDrafts   Permission = "drafts"
)

// Valid reports whether p is one of the recognised permission levels.
func (p Permission) Valid() bool {
	switch p {
	case PermissionPublic, PermissionUsers, PermissionUnlisted, PermissionPrivate, PermissionDrafts:
		return true
	}
	return false
}

// Post is the core aggregate root.
type Post struct {
	ID          string     `json:"id"`
	Author      string     `json:"author"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Permissions Permission `json:"permissions"`
	PublishDate time.Time  `json:"publishDate"`
	UpdatedDate time.Time  `json:"updatedDate"`
}

// AuthoredBy reports whether username is the post's author. Author names are
// compared case-insensitively, matching the citext columns in the store.
func (p *Post) AuthoredBy(username string) bool {
	return strings.EqualFold(p.Author, username)
}

// ListedFor reports whether the post appears in list results for viewer.
// Unlisted, private and draft posts are listed only for their author.
func (p *Post) ListedFor(viewer *Identity) bool {
	switch p.Permissions {
	case PermissionUsers:
		return viewer != nil
	case PermissionUnlisted, PermissionPrivate, PermissionDrafts:
		return viewer != nil && p.AuthoredBy(viewer.Username)
	default:
		return true
	}
}

// ReadableBy returns nil when viewer may fetch the post directly by id.
// Unlisted posts are readable by anyone holding the id even though they are
// never listed. Private and draft posts hide their existence from everyone
// but the author, so the failure is ErrPostNotFound rather than a
// permission error.
func (p *Post) ReadableBy(viewer *Identity) error {
	switch p.Permissions {
	case PermissionUsers:
		if viewer == nil {
			return ErrLoginRequired
		}
		return nil
	case PermissionPrivate, PermissionDrafts:
		if viewer != nil && p.AuthoredBy(viewer.Username) {
			return nil
		}
		return ErrPostNotFound
	default:
		return nil
	}
}
