package review

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrConflict       = errors.New("review already exists")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not_found")
)
