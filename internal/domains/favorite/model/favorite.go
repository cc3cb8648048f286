package model

import (
	"time"

	"github.com/google/uuid"
)

// Favorite đánh dấu một phim yêu thích của spectator
// Mỗi cặp (spectator, film) chỉ có một favorite
type Favorite struct {
	ID          uuid.UUID `json:"id"`
	SpectatorID uuid.UUID `json:"spectator_id"`
	FilmID      uuid.UUID `json:"film_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Read-through từ films
	FilmTitle string `json:"film_title"`
}
