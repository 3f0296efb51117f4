package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

const postColumns = `id, author, title, content, permissions, publishdate, updateddate`

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	query := `INSERT INTO blogposts (` + postColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.Author, post.Title, post.Content, post.Permissions,
		post.PublishDate, post.UpdatedDate)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM blogposts WHERE id = $1`

	post := &domain.Post{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Author, &post.Title, &post.Content, &post.Permissions,
		&post.PublishDate, &post.UpdatedDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post) error {
	query := `UPDATE blogposts
	          SET title = $2, content = $3, permissions = $4, updateddate = $5
	          WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, post.Permissions, post.UpdatedDate)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) DeleteByAuthor(ctx context.Context, id, author string) error {
	// author is citext: the match is case-insensitive. Deleting a row that
	// is not yours looks identical to deleting one that never existed.
	query := `DELETE FROM blogposts WHERE id = $1 AND author = $2`

	res, err := r.db.ExecContext(ctx, query, id, author)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) ListVisible(ctx context.Context, viewer string) ([]domain.Post, error) {
	// One clause per visibility level: public is for everyone, users-only
	// needs any authenticated viewer, the rest only surface for the author.
	query := `SELECT ` + postColumns + ` FROM blogposts
	          WHERE permissions = 'public'
	             OR ($1 <> '' AND permissions = 'users')
	             OR (author = $1 AND permissions IN ('unlisted', 'private', 'drafts'))
	          ORDER BY updateddate DESC`

	rows, err := r.db.QueryContext(ctx, query, viewer)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(
			&post.ID, &post.Author, &post.Title, &post.Content, &post.Permissions,
			&post.PublishDate, &post.UpdatedDate); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}
