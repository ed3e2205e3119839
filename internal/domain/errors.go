package domain

import "errors"

// Domain errors
var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrDocumentNotFound   = errors.New("document not found")
	ErrInvalidFile        = errors.New("invalid file")
)
