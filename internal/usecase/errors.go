package usecase

import "errors"

var (
	// ErrInvalidInput marks malformed or missing request fields (HTTP 400).
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized marks a missing authenticated identity (HTTP 401).
	ErrUnauthorized = errors.New("Unauthorized")
)
