package model

import (
	"time"

	"github.com/google/uuid"

	"cinema-backend/internal/domains/user"
)

// Spectator là profile khán giả gắn 1-1 với User
type Spectator struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Bio       string    `json:"bio"`
	AvatarKey *string   `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Read-through từ users, repository load qua join
	User user.View `json:"user"`
}

// ProfileResponse là projection trả về cho client
type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	User      user.View `json:"user"`
	Bio       string    `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
}
