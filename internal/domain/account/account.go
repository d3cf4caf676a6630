// Package account holds the Account aggregate: a customer company that owns
// users, subscriptions and license assignments.
package account

import (
	"strings"
	"time"
)

const maxNameLength = 255

type Account struct {
	id        uint
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewAccount(name string) (*Account, error) {
	name, err := normalizeName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Account{
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructAccount rebuilds an account from persistence
func ReconstructAccount(id uint, name string, createdAt, updatedAt time.Time) (*Account, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	return &Account{
		id:        id,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (a *Account) ID() uint             { return a.id }
func (a *Account) Name() string         { return a.name }
func (a *Account) CreatedAt() time.Time { return a.createdAt }
func (a *Account) UpdatedAt() time.Time { return a.updatedAt }

// SetID sets the id assigned by the database (persistence layer only)
func (a *Account) SetID(id uint) error {
	if a.id != 0 {
		return ErrIDAlreadySet
	}
	if id == 0 {
		return ErrInvalidID
	}
	a.id = id
	return nil
}

func (a *Account) Rename(name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}
	if name == a.name {
		return nil
	}
	a.name = name
	a.updatedAt = time.Now()
	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	if len(name) > maxNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}
