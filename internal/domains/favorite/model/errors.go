package model

import "errors"

var (
	ErrAlreadyFavorited = errors.New("film already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrFilmNotFound     = errors.New("favorited film not found")
)
