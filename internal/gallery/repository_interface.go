package gallery

import "context"

type Repository interface {
	Create(ctx context.Context, caption *string, imagePath string) (*GalleryImage, error)
	GetAll(ctx context.Context) ([]GalleryImage, error)
}
