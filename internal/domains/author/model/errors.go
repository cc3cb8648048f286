package model

import "errors"

var (
	ErrAuthorNotFound = errors.New("author not found")
	ErrAuthorExists   = errors.New("author profile already exists for this user")
	ErrAuthorHasFilms = errors.New("author still has films attached")
	ErrInvalidDate    = errors.New("invalid date format, expected YYYY-MM-DD")
)
