package gallery

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, caption *string, imagePath string) (*GalleryImage, error) {
	query := `
		INSERT INTO gallery_images (caption, image_path)
		VALUES ($1, $2)
		RETURNING id, caption, image_path, created_at
	`

	var img GalleryImage
	err := r.db.GetContext(ctx, &img, query, caption, imagePath)
	if err != nil {
		return nil, err
	}

	return &img, nil
}

func (r *repository) GetAll(ctx context.Context) ([]GalleryImage, error) {
	query := `
		SELECT id, caption, image_path, created_at
		FROM gallery_images
		ORDER BY created_at DESC
	`

	var images []GalleryImage
	err := r.db.SelectContext(ctx, &images, query)
	if err != nil {
		return nil, err
	}

	return images, nil
}
