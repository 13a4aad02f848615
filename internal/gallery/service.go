package gallery

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/satyensinh/trainer-booking-backend/internal/metrics"
	"github.com/satyensinh/trainer-booking-backend/internal/storage"
)

var ErrMissingImage = errors.New("image file is required")

type Service interface {
	ListImages(ctx context.Context) ([]GalleryImage, error)
	AddImage(ctx context.Context, caption string, image *multipart.FileHeader) (*GalleryImage, error)
}

type service struct {
	repo  Repository
	store storage.Store
}

func NewService(repo Repository, store storage.Store) Service {
	return &service{
		repo:  repo,
		store: store,
	}
}

func (s *service) ListImages(ctx context.Context) ([]GalleryImage, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) AddImage(ctx context.Context, caption string, image *multipart.FileHeader) (*GalleryImage, error) {
	if image == nil {
		return nil, ErrMissingImage
	}

	path, err := s.store.Save(image)
	if err != nil {
		return nil, err
	}
	metrics.RecordUpload("gallery")

	var captionPtr *string
	if caption != "" {
		captionPtr = &caption
	}

	return s.repo.Create(ctx, captionPtr, path)
}
