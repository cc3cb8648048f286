package repository

import (
	"context"

	"github.com/google/uuid"

	"cinema-backend/internal/domains/rating/model"
)

// Repository định nghĩa contract cho rating persistence
// Mọi read/delete đều scoped theo spectator (ownership)
type Repository interface {
	CreateFilmRating(ctx context.Context, r *model.FilmRating) error
	ListFilmRatings(ctx context.Context, spectatorID uuid.UUID) ([]*model.FilmRating, error)
	DeleteFilmRating(ctx context.Context, id, spectatorID uuid.UUID) error

	CreateAuthorRating(ctx context.Context, r *model.AuthorRating) error
	ListAuthorRatings(ctx context.Context, spectatorID uuid.UUID) ([]*model.AuthorRating, error)
	DeleteAuthorRating(ctx context.Context, id, spectatorID uuid.UUID) error
}
