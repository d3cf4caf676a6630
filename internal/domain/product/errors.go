package product

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNameRequired    = errors.New("product name is required")
	ErrProductInUse    = errors.New("product is referenced by subscriptions")
	ErrInvalidID       = errors.New("product ID cannot be zero")
	ErrIDAlreadySet    = errors.New("product ID is already set")
)
