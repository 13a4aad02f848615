package profile

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// The profile table holds at most one row, keyed to id 1.
const profileID = 1

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Get returns the profile, or nil when none has been saved yet.
func (r *repository) Get(ctx context.Context) (*TrainerProfile, error) {
	query := `
		SELECT id, name, bio, photo_path, updated_at
		FROM trainer_profile
		WHERE id = $1
	`

	var p TrainerProfile
	err := r.db.GetContext(ctx, &p, query, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

// Upsert writes the profile row, preserving the stored photo when no new
// one is provided.
func (r *repository) Upsert(ctx context.Context, name, bio string, photoPath *string) (*TrainerProfile, error) {
	query := `
		INSERT INTO trainer_profile (id, name, bio, photo_path, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    bio = EXCLUDED.bio,
		    photo_path = COALESCE(EXCLUDED.photo_path, trainer_profile.photo_path),
		    updated_at = NOW()
		RETURNING id, name, bio, photo_path, updated_at
	`

	var p TrainerProfile
	err := r.db.GetContext(ctx, &p, query, profileID, name, bio, photoPath)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
