package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")

	// Game errors
	ErrNoActiveGame  = errors.New("no active game")
	ErrGameCompleted = errors.New("game already completed")
)
