// Package subscription holds the Subscription aggregate: the license pool an
// account holds for one product.
package subscription

import (
	"time"
)

// ProductRef is the product summary loaded alongside a subscription.
type ProductRef struct {
	ID   uint
	Name string
}

type Subscription struct {
	id               uint
	accountID        uint
	productID        uint
	numberOfLicenses int
	issuedAt         time.Time
	expiresAt        time.Time
	createdAt        time.Time
	updatedAt        time.Time
	product          *ProductRef
}

// NewSubscription creates a pool. issuedAt defaults to now when zero.
func NewSubscription(accountID, productID uint, numberOfLicenses int, issuedAt, expiresAt time.Time) (*Subscription, error) {
	if accountID == 0 {
		return nil, ErrAccountRequired
	}
	if productID == 0 {
		return nil, ErrProductRequired
	}
	if numberOfLicenses < 0 {
		return nil, ErrNegativeLicenses
	}
	if expiresAt.IsZero() {
		return nil, ErrExpiresAtRequired
	}

	now := time.Now()
	if issuedAt.IsZero() {
		issuedAt = now
	}

	return &Subscription{
		accountID:        accountID,
		productID:        productID,
		numberOfLicenses: numberOfLicenses,
		issuedAt:         issuedAt,
		expiresAt:        expiresAt,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructSubscription(
	id, accountID, productID uint,
	numberOfLicenses int,
	issuedAt, expiresAt, createdAt, updatedAt time.Time,
	product *ProductRef,
) (*Subscription, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	return &Subscription{
		id:               id,
		accountID:        accountID,
		productID:        productID,
		numberOfLicenses: numberOfLicenses,
		issuedAt:         issuedAt,
		expiresAt:        expiresAt,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		product:          product,
	}, nil
}

func (s *Subscription) ID() uint              { return s.id }
func (s *Subscription) AccountID() uint       { return s.accountID }
func (s *Subscription) ProductID() uint       { return s.productID }
func (s *Subscription) NumberOfLicenses() int { return s.numberOfLicenses }
func (s *Subscription) IssuedAt() time.Time   { return s.issuedAt }
func (s *Subscription) ExpiresAt() time.Time  { return s.expiresAt }
func (s *Subscription) CreatedAt() time.Time  { return s.createdAt }
func (s *Subscription) UpdatedAt() time.Time  { return s.updatedAt }

// Product is nil unless the repository preloaded it.
func (s *Subscription) Product() *ProductRef { return s.product }

func (s *Subscription) SetID(id uint) error {
	if s.id != 0 {
		return ErrIDAlreadySet
	}
	if id == 0 {
		return ErrInvalidID
	}
	s.id = id
	return nil
}

// AvailableLicenses is the pool size minus the used count. It may be negative
// for rows written before the pool was shrunk outside this service.
func (s *Subscription) AvailableLicenses(used int64) int64 {
	return int64(s.numberOfLicenses) - used
}

// ResizePool changes the pool size. used is the current assignment count of
// the pool; shrinking below it would break the allocation invariant.
func (s *Subscription) ResizePool(numberOfLicenses int, used int64) error {
	if numberOfLicenses < 0 {
		return ErrNegativeLicenses
	}
	if int64(numberOfLicenses) < used {
		return ErrBelowUsage
	}
	s.numberOfLicenses = numberOfLicenses
	s.updatedAt = time.Now()
	return nil
}

// Reschedule updates the validity window. Zero values leave a field unchanged.
func (s *Subscription) Reschedule(issuedAt, expiresAt time.Time) {
	if !issuedAt.IsZero() {
		s.issuedAt = issuedAt
	}
	if !expiresAt.IsZero() {
		s.expiresAt = expiresAt
	}
	s.updatedAt = time.Now()
}
