package gallery

import "time"

// GalleryImage is one uploaded photo shown on the public gallery page.
type GalleryImage struct {
	ID        int       `db:"id" json:"id"`
	Caption   *string   `db:"caption" json:"caption,omitempty"`
	ImagePath string    `db:"image_path" json:"imagePath"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
