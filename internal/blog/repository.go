package blog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrPostNotFound = errors.New("blog post not found")
	ErrSlugTaken    = errors.New("a post with this slug already exists")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, title, slug, content string) (*BlogPost, error) {
	query := `
		INSERT INTO blog_posts (title, slug, content)
		VALUES ($1, $2, $3)
		RETURNING id, title, slug, content, created_at
	`

	var post BlogPost
	err := r.db.GetContext(ctx, &post, query, title, slug, content)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	return &post, nil
}

func (r *repository) GetAll(ctx context.Context) ([]BlogPost, error) {
	query := `
		SELECT id, title, slug, content, created_at
		FROM blog_posts
		ORDER BY created_at DESC
	`

	var posts []BlogPost
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	query := `
		SELECT id, title, slug, content, created_at
		FROM blog_posts
		WHERE slug = $1
	`

	var post BlogPost
	err := r.db.GetContext(ctx, &post, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
