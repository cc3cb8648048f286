package model

import (
	"time"

	"github.com/google/uuid"

	"cinema-backend/internal/domains/user"
)

// Status lifecycle của film
const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusArchived  = "ARCHIVED"
)

// Source của film record
const (
	SourceAdmin = "ADMIN"
	SourceTMDB  = "TMDB"
)

// Film là một phim trong catalog
type Film struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ReleaseDate *time.Time `json:"release_date"`
	Evaluation  int        `json:"evaluation"`
	Status      string     `json:"status"`
	Source      string     `json:"source"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Đạo diễn của phim, load qua film_authors
	Authors []AuthorSummary `json:"authors,omitempty"`
}

// AuthorSummary là projection gọn của author trong film response
type AuthorSummary struct {
	ID   uuid.UUID `json:"id"`
	User user.View `json:"user"`
}

func ValidStatus(status string) bool {
	return status == StatusDraft || status == StatusPublished || status == StatusArchived
}

func ValidSource(source string) bool {
	return source == SourceAdmin || source == SourceTMDB
}
