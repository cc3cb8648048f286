package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const dateLayout = "2006-01-02"

// CreateAuthorRequest tạo author mới (tự tạo backing user)
type CreateAuthorRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD, optional
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.DateOfBirth, validation.Date(dateLayout)),
	)
}

// UpdateAuthorRequest cập nhật author, write-through sang backing user
type UpdateAuthorRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	DateOfBirth *string `json:"date_of_birth"` // YYYY-MM-DD
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Length(1, 150)),
		validation.Field(&r.LastName, validation.Length(1, 150)),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.DateOfBirth, validation.Date(dateLayout)),
	)
}
