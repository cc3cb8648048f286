package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Note là smallint không âm trong DB
const maxNote = 32767

// CreateFilmRatingRequest tạo rating cho một phim
type CreateFilmRatingRequest struct {
	FilmID uuid.UUID `json:"film_id"`
	Note   int       `json:"note"`
}

func (r CreateFilmRatingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FilmID, validation.Required),
		validation.Field(&r.Note, validation.Min(0), validation.Max(maxNote)),
	)
}

// CreateAuthorRatingRequest tạo rating cho một đạo diễn
type CreateAuthorRatingRequest struct {
	AuthorID uuid.UUID `json:"author_id"`
	Note     int       `json:"note"`
}

func (r CreateAuthorRatingRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID, validation.Required),
		validation.Field(&r.Note, validation.Min(0), validation.Max(maxNote)),
	)
}
