package subscription

import "errors"

var (
	ErrSubscriptionNotFound  = errors.New("subscription not found")
	ErrDuplicateSubscription = errors.New("account already has a subscription for this product")
	ErrBelowUsage            = errors.New("number of licenses cannot be lower than the licenses already assigned")
	ErrNegativeLicenses      = errors.New("number of licenses must be greater than or equal to 0")
	ErrExpiresAtRequired     = errors.New("expires_at is required")
	ErrAccountRequired       = errors.New("subscription account is required")
	ErrProductRequired       = errors.New("subscription product is required")
	ErrInvalidID             = errors.New("subscription ID cannot be zero")
	ErrIDAlreadySet          = errors.New("subscription ID is already set")
)
