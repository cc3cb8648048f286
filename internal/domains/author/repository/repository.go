package repository

import (
	"context"

	"github.com/google/uuid"

	"cinema-backend/internal/domains/author/model"
)

// Repository định nghĩa contract cho author persistence
type Repository interface {
	Create(ctx context.Context, a *model.Author) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Author, error)

	// List trả về authors (kèm user), filter theo source nếu source != ""
	List(ctx context.Context, source string) ([]*model.Author, error)

	Update(ctx context.Context, a *model.Author) error
	Delete(ctx context.Context, id uuid.UUID) error

	// CountFilms đếm số phim đang gắn với author (delete guard)
	CountFilms(ctx context.Context, id uuid.UUID) (int64, error)

	// GetOrCreateForUser tạo author profile cho user nếu chưa có (importer)
	// Returns: (author, created, error)
	GetOrCreateForUser(ctx context.Context, userID uuid.UUID, source string) (*model.Author, bool, error)
}
