package wishlist

import "errors"

var (
	ErrConflict = errors.New("car already in wishlist")
	ErrNotFound = errors.New("not_found")
)
