package repository

import (
	"context"

	"github.com/google/uuid"

	"cinema-backend/internal/domains/favorite/model"
)

// Repository định nghĩa contract cho favorite persistence
type Repository interface {
	Create(ctx context.Context, f *model.Favorite) error
	ListBySpectator(ctx context.Context, spectatorID uuid.UUID) ([]*model.Favorite, error)
	Delete(ctx context.Context, id, spectatorID uuid.UUID) error
}
