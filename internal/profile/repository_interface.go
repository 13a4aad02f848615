package profile

import "context"

type Repository interface {
	Get(ctx context.Context) (*TrainerProfile, error)
	Upsert(ctx context.Context, name, bio string, photoPath *string) (*TrainerProfile, error)
}
