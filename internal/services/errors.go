package services

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to
// HTTP status codes; repositories.ErrNotFound passes through untouched.
var (
	ErrValidation = errors.New("validation failed")
	ErrForbidden  = errors.New("forbidden")
)
