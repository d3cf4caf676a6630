// Package licensing models license assignments and the rules that decide
// whether a user may draw a license from an account's subscription pool.
package licensing

import "time"

// Assignment grants one user of an account a license for one product.
type Assignment struct {
	id        uint
	accountID uint
	userID    uint
	productID uint
	createdAt time.Time
}

func NewAssignment(accountID, userID, productID uint) (*Assignment, error) {
	if accountID == 0 || userID == 0 || productID == 0 {
		return nil, ErrIncompleteAssignment
	}
	return &Assignment{
		accountID: accountID,
		userID:    userID,
		productID: productID,
		createdAt: time.Now(),
	}, nil
}

func ReconstructAssignment(id, accountID, userID, productID uint, createdAt time.Time) (*Assignment, error) {
	if id == 0 {
		return nil, ErrInvalidID
	}
	return &Assignment{
		id:        id,
		accountID: accountID,
		userID:    userID,
		productID: productID,
		createdAt: createdAt,
	}, nil
}

func (a *Assignment) ID() uint             { return a.id }
func (a *Assignment) AccountID() uint      { return a.accountID }
func (a *Assignment) UserID() uint         { return a.userID }
func (a *Assignment) ProductID() uint      { return a.productID }
func (a *Assignment) CreatedAt() time.Time { return a.createdAt }

func (a *Assignment) SetID(id uint) error {
	if a.id != 0 {
		return ErrIDAlreadySet
	}
	if id == 0 {
		return ErrInvalidID
	}
	a.id = id
	return nil
}

// AssignmentDetail is an assignment joined with the names shown in listings.
type AssignmentDetail struct {
	Assignment  *Assignment
	UserName    string
	UserEmail   string
	ProductName string
}
