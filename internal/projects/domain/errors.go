package domain

import "errors"

var (
	ErrInvalidID     = errors.New("invalid ID")
	ErrMissingConfig = errors.New("missing document store configuration")
)
