package repository

import (
	"context"

	"github.com/google/uuid"

	"cinema-backend/internal/domains/film/model"
)

// ListFilter là điều kiện lọc cho List
type ListFilter struct {
	Status string // "" = không lọc
	Source string // "" = không lọc
}

// Repository định nghĩa contract cho film persistence
type Repository interface {
	// Create insert film + gắn authors trong một transaction
	Create(ctx context.Context, f *model.Film, authorIDs []uuid.UUID) error

	FindByID(ctx context.Context, id uuid.UUID) (*model.Film, error)
	FindByTitle(ctx context.Context, title string) (*model.Film, error)
	List(ctx context.Context, filter ListFilter) ([]*model.Film, error)

	// Update ghi đè fields + thay authors nếu authorIDs != nil
	Update(ctx context.Context, f *model.Film, authorIDs *[]uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error

	// GetOrCreateByTitle tạo film nếu title chưa có, không bao giờ mutate row cũ
	// Returns: (film, created, error)
	GetOrCreateByTitle(ctx context.Context, f *model.Film) (*model.Film, bool, error)

	// AddAuthor gắn author vào film, idempotent
	// Returns: (linked, error) — linked = false nếu đã gắn từ trước
	AddAuthor(ctx context.Context, filmID, authorID uuid.UUID) (bool, error)
}
