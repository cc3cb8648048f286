package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateFavoriteRequest đánh dấu phim yêu thích
type CreateFavoriteRequest struct {
	FilmID uuid.UUID `json:"film_id"`
}

func (r CreateFavoriteRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FilmID, validation.Required),
	)
}
