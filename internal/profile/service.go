package profile

import (
	"context"
	"mime/multipart"

	"github.com/satyensinh/trainer-booking-backend/internal/metrics"
	"github.com/satyensinh/trainer-booking-backend/internal/storage"
)

type Service interface {
	GetProfile(ctx context.Context) (*TrainerProfile, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest, photo *multipart.FileHeader) (*TrainerProfile, error)
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

func (s *service) GetProfile(ctx context.Context) (*TrainerProfile, error) {
	return s.repo.Get(ctx)
}

func (s *service) UpdateProfile(ctx context.Context, req UpdateProfileRequest, photo *multipart.FileHeader) (*TrainerProfile, error) {
	var photoPath *string
	if photo != nil {
		path, err := s.store.Save(photo)
		if err != nil {
			return nil, err
		}
		photoPath = &path
		metrics.RecordUpload("profile_photo")
	}

	return s.repo.Upsert(ctx, req.Name, req.Bio, photoPath)
}
