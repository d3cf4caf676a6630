// Package user holds the User entity: a person inside an account who can be
// granted product licenses.
package user

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

type User struct {
	id        uint
	accountID uint
	name      string
	email     string
	createdAt time.Time
	updatedAt time.Time
}

// NormalizeEmail trims and case-folds an address so uniqueness checks ignore case.
func NormalizeEmail(email string) string {
	// Casers are stateful, so one is built per call.
	return cases.Fold().String(strings.TrimSpace(email))
}

func NewUser(accountID uint, name, email string) (*User, error) {
	if accountID == 0 {
		return nil, ErrAccountRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	email = NormalizeEmail(email)
	if email == "" {
		return nil, ErrEmailRequired
	}

	now := time.Now()
	return &User{
		accountID: accountID,
		name:      name,
		email:     email,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructUser(id, accountID uint, name, email string, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	return &User{
		id:        id,
		accountID: accountID,
		name:      name,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (u *User) ID() uint             { return u.id }
func (u *User) AccountID() uint      { return u.accountID }
func (u *User) Name() string         { return u.name }
func (u *User) Email() string        { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return ErrIDAlreadySet
	}
	if id == 0 {
		return ErrInvalidID
	}
	u.id = id
	return nil
}

// UpdateProfile applies the non-nil fields. Moving a user between accounts
// is not supported.
func (u *User) UpdateProfile(name, email *string) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return ErrNameRequired
		}
		u.name = trimmed
	}
	if email != nil {
		normalized := NormalizeEmail(*email)
		if normalized == "" {
			return ErrEmailRequired
		}
		u.email = normalized
	}
	u.updatedAt = time.Now()
	return nil
}
