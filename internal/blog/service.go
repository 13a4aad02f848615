package blog

import "context"

type Service interface {
	ListPosts(ctx context.Context) ([]BlogPost, error)
	GetPost(ctx context.Context, slug string) (*BlogPost, error)
	CreatePost(ctx context.Context, req CreatePostRequest) (*BlogPost, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListPosts(ctx context.Context) ([]BlogPost, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) GetPost(ctx context.Context, slug string) (*BlogPost, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *service) CreatePost(ctx context.Context, req CreatePostRequest) (*BlogPost, error) {
	return s.repo.Create(ctx, req.Title, req.Slug, req.Content)
}
