package model

import "errors"

var (
	ErrSpectatorNotFound = errors.New("spectator not found")
	ErrSpectatorExists   = errors.New("spectator profile already exists")
	ErrInvalidAvatar     = errors.New("invalid avatar image")
)
