package components

import "errors"

var (
	ErrMissingParent = errors.New("widget has no parent")
	ErrInvalidSize   = errors.New("widget size must be positive")
	ErrEmptyText     = errors.New("widget text must not be empty")
)
