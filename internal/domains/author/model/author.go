package model

import (
	"time"

	"github.com/google/uuid"

	"cinema-backend/internal/domains/user"
)

// Source của author record: tạo tay qua API hay import từ TMDb
const (
	SourceAdmin = "ADMIN"
	SourceTMDB  = "TMDB"
)

// Author là đạo diễn, gắn 1-1 với User
type Author struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Source      string     `json:"source"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Read-through từ users, repository load qua join
	User user.View `json:"user"`

	// Phim của author, chỉ load ở detail endpoint
	Films []FilmSummary `json:"films,omitempty"`
}

// FilmSummary là projection gọn của film trong author response
type FilmSummary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Status     string    `json:"status"`
	Evaluation int       `json:"evaluation"`
}

// ValidSource kiểm tra giá trị source filter có hợp lệ không
// Giá trị lạ bị bỏ qua (không filter) thay vì báo lỗi
func ValidSource(source string) bool {
	return source == SourceAdmin || source == SourceTMDB
}
