package blog

import "context"

type Repository interface {
	Create(ctx context.Context, title, slug, content string) (*BlogPost, error)
	GetAll(ctx context.Context) ([]BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
}
