package services

import "errors"

// Sentinel errors returned by the services. Handlers translate them to
// HTTP statuses with errors.Is; anything else is a server error.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateSlug      = errors.New("slug already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
