package profile

import "time"

// TrainerProfile is the single profile row backing GET/PUT /profile.
type TrainerProfile struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Bio       string    `db:"bio" json:"bio"`
	PhotoPath *string   `db:"photo_path" json:"photoPath,omitempty"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// UpdateProfileRequest carries the multipart fields of PUT /profile. The
// photo file travels separately.
type UpdateProfileRequest struct {
	Name string
	Bio  string
}
