package repository

import (
	"context"

	"github.com/google/uuid"

	"cinema-backend/internal/domains/spectator/model"
)

// Repository định nghĩa contract cho spectator persistence
type Repository interface {
	Create(ctx context.Context, s *model.Spectator) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Spectator, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Spectator, error)
	UpdateBio(ctx context.Context, id uuid.UUID, bio string) error
	UpdateAvatarKey(ctx context.Context, id uuid.UUID, key string) error
}
