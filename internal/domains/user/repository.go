package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository định nghĩa contract cho user persistence
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)

	// GetOrCreate tạo user theo username nếu chưa có
	// Returns: (user, created, error)
	GetOrCreate(ctx context.Context, u *User) (*User, bool, error)

	Update(ctx context.Context, u *User) error
}
