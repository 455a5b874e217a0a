package service

import "errors"

// Validation errors recovered locally by handlers (form re-render, no
// write). Everything else is surfaced as an internal failure, except
// repository.ErrNotFound which maps to a 404.
var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrMissingFields      = errors.New("all required fields must be filled in")
	ErrSelfParent         = errors.New("a zone cannot be its own parent")
)
