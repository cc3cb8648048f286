package model

import "errors"

var (
	ErrFilmNotFound   = errors.New("film not found")
	ErrFilmExists     = errors.New("film with this title already exists")
	ErrAuthorNotFound = errors.New("referenced author not found")
	ErrInvalidDate    = errors.New("invalid date format, expected YYYY-MM-DD")
)
