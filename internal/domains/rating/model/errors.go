package model

import "errors"

var (
	ErrAlreadyRated   = errors.New("already rated by this spectator")
	ErrRatingNotFound = errors.New("rating not found")
	ErrTargetNotFound = errors.New("rated film or author not found")
)
