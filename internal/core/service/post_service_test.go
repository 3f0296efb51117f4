package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inkwell/blog-platform/internal/core/domain"
	"github.com/inkwell/blog-platform/internal/core/ports"
)

type stubPostRepo struct {
	posts map[string]*domain.Post
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func clonePost(p *domain.Post) *domain.Post {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) error {
	r.posts[post.ID] = clonePost(post)
	return nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return clonePost(post), nil
}

func (r *stubPostRepo) Update(_ context.Context, post *domain.Post) error {
	if _, ok := r.posts[post.ID]; !ok {
		return domain.ErrPostNotFound
	}
	r.posts[post.ID] = clonePost(post)
	return nil
}

func (r *stubPostRepo) DeleteByAuthor(_ context.Context, id, author string) error {
	post, ok := r.posts[id]
	if !ok || !strings.EqualFold(post.Author, author) {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *stubPostRepo) ListVisible(_ context.Context, viewer string) ([]domain.Post, error) {
	var ident *domain.Identity
	if viewer != "" {
		ident = &domain.Identity{Username: viewer}
	}
	out := make([]domain.Post, 0)
	for _, p := range r.posts {
		if p.ListedFor(ident) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func str(s string) *string { return &s }

func newTestPostService(repo ports.PostRepository) ports.PostService {
	return NewPostService(repo, zerolog.Nop())
}

var alice = &domain.Identity{Username: "alice", Email: "alice@example.com"}
var bob = &domain.Identity{Username: "bob", Email: "bob@example.com"}

func TestPostService_Create_Success(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)

	post, err := svc.Create(context.Background(), alice, ports.PostDraft{
		Title:       str("Hello"),
		Content:     str("<p>world</p>"),
		Permissions: str("users"),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if post.Author != "alice" || post.Title != "Hello" || post.Permissions != domain.PermissionUsers {
		t.Fatalf("unexpected post: %+v", post)
	}
	if _, err := uuid.Parse(post.ID); err != nil {
		t.Fatalf("expected UUID id, got %q", post.ID)
	}
	if post.PublishDate.IsZero() || !post.PublishDate.Equal(post.UpdatedDate) {
		t.Fatalf("expected matching publish and updated dates, got %v / %v", post.PublishDate, post.UpdatedDate)
	}
	if _, err := repo.FindByID(context.Background(), post.ID); err != nil {
		t.Fatalf("post not stored: %v", err)
	}
}

func TestPostService_Create_Defaults(t *testing.T) {
	svc := newTestPostService(newStubPostRepo())

	// Present-but-empty title falls back, absent permissions default to public.
	post, err := svc.Create(context.Background(), alice, ports.PostDraft{
		Title:   str(""),
		Content: str("body"),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if post.Title != "Untitled Post" {
		t.Fatalf("expected default title, got %q", post.Title)
	}
	if post.Permissions != domain.PermissionPublic {
		t.Fatalf("expected public permissions, got %s", post.Permissions)
	}
}

func TestPostService_Create_Validation(t *testing.T) {
	svc := newTestPostService(newStubPostRepo())

	if _, err := svc.Create(context.Background(), alice, ports.PostDraft{Content: str("body")}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing title key, got %v", err)
	}
	if _, err := svc.Create(context.Background(), alice, ports.PostDraft{Title: str("t")}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing content key, got %v", err)
	}
	if _, err := svc.Create(context.Background(), alice, ports.PostDraft{
		Title: str("t"), Content: str("c"), Permissions: str("everyone"),
	}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown permissions, got %v", err)
	}
}

func TestPostService_Create_SanitizesContent(t *testing.T) {
	svc := newTestPostService(newStubPostRepo())

	post, err := svc.Create(context.Background(), alice, ports.PostDraft{
		Title:   str("t"),
		Content: str(`<p onclick="alert(1)">hi <strong>there</strong></p><script>alert(2)</script>`),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if strings.Contains(post.Content, "script") || strings.Contains(post.Content, "onclick") {
		t.Fatalf("expected scripts and event handlers stripped, got %q", post.Content)
	}
	if !strings.Contains(post.Content, "<strong>there</strong>") {
		t.Fatalf("expected formatting markup kept, got %q", post.Content)
	}
}

func TestPostService_Get_Visibility(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)

	private, _ := svc.Create(context.Background(), alice, ports.PostDraft{
		Title: str("secret"), Content: str("c"), Permissions: str("private"),
	})
	unlisted, _ := svc.Create(context.Background(), alice, ports.PostDraft{
		Title: str("hidden"), Content: str("c"), Permissions: str("unlisted"),
	})
	usersOnly, _ := svc.Create(context.Background(), alice, ports.PostDraft{
		Title: str("members"), Content: str("c"), Permissions: str("users"),
	})

	if _, err := svc.Get(context.Background(), bob, private.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("private post should 404 for non-author, got %v", err)
	}
	if _, err := svc.Get(context.Background(), alice, private.ID); err != nil {
		t.Fatalf("author should read own private post: %v", err)
	}
	if _, err := svc.Get(context.Background(), nil, unlisted.ID); err != nil {
		t.Fatalf("unlisted post should be readable by id: %v", err)
	}
	if _, err := svc.Get(context.Background(), nil, usersOnly.ID); !errors.Is(err, domain.ErrLoginRequired) {
		t.Fatalf("users post should require login, got %v", err)
	}
	if _, err := svc.Get(context.Background(), bob, usersOnly.ID); err != nil {
		t.Fatalf("users post should be readable when logged in: %v", err)
	}
}

func TestPostService_Get_IDNormalization(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)

	post, _ := svc.Create(context.Background(), alice, ports.PostDraft{Title: str("t"), Content: str("c")})

	if _, err := svc.Get(context.Background(), nil, strings.ToUpper(post.ID)); err != nil {
		t.Fatalf("upper-case id should resolve: %v", err)
	}
	if _, err := svc.Get(context.Background(), nil, "not-a-uuid"); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("malformed id should 404, got %v", err)
	}
}

func TestPostService_Update_Partial(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)

	post, _ := svc.Create(context.Background(), alice, ports.PostDraft{
		Title: str("original"), Content: str("body"), Permissions: str("drafts"),
	})

	updated, err := svc.Update(context.Background(), alice, post.ID, ports.PostDraft{
		Permissions: str("public"),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Title != "original" || updated.Content != "body" {
		t.Fatalf("untouched fields should survive, got %+v", updated)
	}
	if updated.Permissions != domain.PermissionPublic {
		t.Fatalf("expected public permissions, got %s", updated.Permissions)
	}
	if !updated.UpdatedDate.After(post.UpdatedDate) && !updated.UpdatedDate.Equal(post.UpdatedDate) {
		t.Fatalf("updated date went backwards: %v < %v", updated.UpdatedDate, post.UpdatedDate)
	}
	if !updated.PublishDate.Equal(post.PublishDate) {
		t.Fatalf("publish date must not change on update")
	}
}

func TestPostService_Update_SanitizesContent(t *testing.T) {
	svc := newTestPostService(newStubPostRepo())

	post, _ := svc.Create(context.Background(), alice, ports.PostDraft{Title: str("t"), Content: str("c")})
	updated, err := svc.Update(context.Background(), alice, post.ID, ports.PostDraft{
		Content: str(`<img src="x" onerror="alert(1)">ok`),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if strings.Contains(updated.Content, "onerror") {
		t.Fatalf("expected event handler stripped, got %q", updated.Content)
	}
}

func TestPostService_Update_NotAuthor(t *testing.T) {
	svc := newTestPostService(newStubPostRepo())

	post, _ := svc.Create(context.Background(), alice, ports.PostDraft{Title: str("t"), Content: str("c")})
	if _, err := svc.Update(context.Background(), bob, post.ID, ports.PostDraft{Title: str("hijack")}); !errors.Is(err, domain.ErrNotAuthor) {
		t.Fatalf("expected ErrNotAuthor, got %v", err)
	}
}

func TestPostService_Delete(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)

	post, _ := svc.Create(context.Background(), alice, ports.PostDraft{Title: str("t"), Content: str("c")})

	if err := svc.Delete(context.Background(), bob, post.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("non-author delete should report not found, got %v", err)
	}
	if err := svc.Delete(context.Background(), alice, post.ID); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), post.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("post should be gone, got %v", err)
	}
	if err := svc.Delete(context.Background(), alice, "not-a-uuid"); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("malformed id should 404, got %v", err)
	}
}

func TestPostService_List(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)

	_, _ = svc.Create(context.Background(), alice, ports.PostDraft{Title: str("pub"), Content: str("c")})
	_, _ = svc.Create(context.Background(), alice, ports.PostDraft{Title: str("members"), Content: str("c"), Permissions: str("users")})
	_, _ = svc.Create(context.Background(), alice, ports.PostDraft{Title: str("draft"), Content: str("c"), Permissions: str("drafts")})

	anon, err := svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(anon) != 1 || anon[0].Title != "pub" {
		t.Fatalf("anonymous viewer should see public only, got %+v", anon)
	}

	asBob, _ := svc.List(context.Background(), bob)
	if len(asBob) != 2 {
		t.Fatalf("logged-in viewer should see public and users posts, got %+v", asBob)
	}

	asAlice, _ := svc.List(context.Background(), alice)
	if len(asAlice) != 3 {
		t.Fatalf("author should see everything of their own, got %+v", asAlice)
	}
}

func TestPostService_List_NewestFirst(t *testing.T) {
	repo := newStubPostRepo()
	svc := newTestPostService(repo)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"middle", "newest", "oldest"} {
		offsets := []time.Duration{time.Hour, 2 * time.Hour, 0}
		_ = repo.Create(context.Background(), &domain.Post{
			ID:          uuid.NewString(),
			Author:      "alice",
			Title:       title,
			Permissions: domain.PermissionPublic,
			PublishDate: base,
			UpdatedDate: base.Add(offsets[i]),
		})
	}

	posts, err := svc.List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	for i, want := range []string{"newest", "middle", "oldest"} {
		if posts[i].Title != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, posts[i].Title)
		}
	}
}
