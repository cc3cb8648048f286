package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UpdateProfileRequest cập nhật profile của spectator hiện tại
type UpdateProfileRequest struct {
	Bio *string `json:"bio"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Bio, validation.Length(0, 2000)),
	)
}
