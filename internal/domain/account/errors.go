package account

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrNameRequired    = errors.New("account name is required")
	ErrNameTooLong     = errors.New("account name must be at most 255 characters")
	ErrInvalidID       = errors.New("account ID cannot be zero")
	ErrIDAlreadySet    = errors.New("account ID is already set")
)
