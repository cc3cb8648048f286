package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// CreateFilmRequest tạo film mới qua API (source ADMIN)
type CreateFilmRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ReleaseDate string      `json:"release_date"` // YYYY-MM-DD, optional
	Evaluation  int         `json:"evaluation"`   // 1..5, default 3
	Status      string      `json:"status"`       // default DRAFT
	AuthorIDs   []uuid.UUID `json:"author_ids"`
}

func (r CreateFilmRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.ReleaseDate, validation.Date(dateLayout)),
		validation.Field(&r.Evaluation, validation.Min(0), validation.Max(5)),
		validation.Field(&r.Status, validation.In(StatusDraft, StatusPublished, StatusArchived)),
	)
}

// UpdateFilmRequest cập nhật film, nil field = giữ nguyên
type UpdateFilmRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	ReleaseDate *string      `json:"release_date"` // "" = clear
	Evaluation  *int         `json:"evaluation"`
	Status      *string      `json:"status"`
	AuthorIDs   *[]uuid.UUID `json:"author_ids"` // nil = giữ nguyên, [] = clear
}

func (r UpdateFilmRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 255)),
		validation.Field(&r.Evaluation, validation.Min(1), validation.Max(5)),
		validation.Field(&r.Status, validation.In(StatusDraft, StatusPublished, StatusArchived)),
	)
}
