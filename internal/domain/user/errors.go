package user

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email has already been taken")
	ErrNameRequired    = errors.New("user name is required")
	ErrEmailRequired   = errors.New("user email is required")
	ErrAccountRequired = errors.New("user account is required")
	ErrInvalidID       = errors.New("user ID cannot be zero")
	ErrIDAlreadySet    = errors.New("user ID is already set")
)
