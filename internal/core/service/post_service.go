package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inkwell/blog-platform/internal/core/domain"
	"github.com/inkwell/blog-platform/internal/core/ports"
)

// defaultTitle replaces a present-but-empty title on creation.
const defaultTitle = "Untitled Post"

type postService struct {
	repo ports.PostRepository
	log  zerolog.Logger
}

// NewPostService returns a PostService implementation.
func NewPostService(repo ports.PostRepository, log zerolog.Logger) ports.PostService {
	return &postService{repo: repo, log: log}
}

func (s *postService) Create(ctx context.Context, author *domain.Identity, draft ports.PostDraft) (*domain.Post, error) {
	// Title and content must be present in the body; an empty title is
	// allowed and falls back to the default.
	if draft.Title == nil || draft.Content == nil {
		return nil, fmt.Errorf("%w: title and content are required", domain.ErrValidation)
	}

	title := *draft.Title
	if title == "" {
		title = defaultTitle
	}

	permissions := domain.PermissionPublic
	if draft.Permissions != nil && *draft.Permissions != "" {
		permissions = domain.Permission(*draft.Permissions)
		if !permissions.Valid() {
			return nil, fmt.Errorf("%w: unknown permissions value %q", domain.ErrValidation, *draft.Permissions)
		}
	}

	now := time.Now().UTC()
	post := &domain.Post{
		ID:          uuid.NewString(),
		Author:      author.Username,
		Title:       title,
		Content:     sanitizeContent(*draft.Content),
		Permissions: permissions,
		PublishDate: now,
		UpdatedDate: now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", post.ID).Str("author", post.Author).Str("permissions", string(post.Permissions)).Msg("post created")
	return post, nil
}

func (s *postService) Get(ctx context.Context, viewer *domain.Identity, id string) (*domain.Post, error) {
	post, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := post.ReadableBy(viewer); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) Update(ctx context.Context, author *domain.Identity, id string, draft ports.PostDraft) (*domain.Post, error) {
	post, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.AuthoredBy(author.Username) {
		return nil, domain.ErrNotAuthor
	}

	if draft.Title != nil {
		post.Title = *draft.Title
	}
	if draft.Content != nil {
		post.Content = sanitizeContent(*draft.Content)
	}
	if draft.Permissions != nil && *draft.Permissions != "" {
		permissions := domain.Permission(*draft.Permissions)
		if !permissions.Valid() {
			return nil, fmt.Errorf("%w: unknown permissions value %q", domain.ErrValidation, *draft.Permissions)
		}
		post.Permissions = permissions
	}
	post.UpdatedDate = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}

	s.log.Info().Str("id", post.ID).Str("author", post.Author).Msg("post updated")
	return post, nil
}

func (s *postService) Delete(ctx context.Context, author *domain.Identity, id string) error {
	normalized, err := normalizeID(id)
	if err != nil {
		return domain.ErrPostNotFound
	}
	if err := s.repo.DeleteByAuthor(ctx, normalized, author.Username); err != nil {
		return err
	}

	s.log.Info().Str("id", normalized).Str("author", author.Username).Msg("post deleted")
	return nil
}

func (s *postService) List(ctx context.Context, viewer *domain.Identity) ([]domain.Post, error) {
	username := ""
	if viewer != nil {
		username = viewer.Username
	}

	posts, err := s.repo.ListVisible(ctx, username)
	if err != nil {
		return nil, err
	}

	// Most recently updated first, regardless of the store's ordering.
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].UpdatedDate.After(posts[j].UpdatedDate)
	})
	return posts, nil
}

func (s *postService) findByID(ctx context.Context, id string) (*domain.Post, error) {
	normalized, err := normalizeID(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}
	return s.repo.FindByID(ctx, normalized)
}

// normalizeID parses id as a UUID and returns its canonical lower-case
// form, making lookups case-insensitive. A malformed id is treated the same
// as an unknown one.
func normalizeID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}
