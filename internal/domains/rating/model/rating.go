package model

import (
	"time"

	"github.com/google/uuid"
)

// FilmRating là đánh giá của một spectator cho một phim
// Mỗi cặp (film, spectator) chỉ có một rating
type FilmRating struct {
	ID          uuid.UUID `json:"id"`
	FilmID      uuid.UUID `json:"film_id"`
	SpectatorID uuid.UUID `json:"spectator_id"`
	Note        int       `json:"note"`
	CreatedAt   time.Time `json:"created_at"`

	// Read-through từ films
	FilmTitle string `json:"film_title"`
}

// AuthorRating là đánh giá của một spectator cho một đạo diễn
type AuthorRating struct {
	ID          uuid.UUID `json:"id"`
	AuthorID    uuid.UUID `json:"author_id"`
	SpectatorID uuid.UUID `json:"spectator_id"`
	Note        int       `json:"note"`
	CreatedAt   time.Time `json:"created_at"`

	// Read-through từ authors/users
	AuthorName string `json:"author_name"`
}
