package licensing

import "errors"

var (
	ErrAssignmentNotFound = errors.New("license assignment not found")
	// ErrDuplicateAssignment is returned by Repository.Create when the unique
	// (account, product, user) index rejects the row.
	ErrDuplicateAssignment  = errors.New("license assignment already exists")
	ErrIncompleteAssignment = errors.New("account, user and product are required")
	ErrInvalidID            = errors.New("license assignment ID cannot be zero")
	ErrIDAlreadySet         = errors.New("license assignment ID is already set")
)
