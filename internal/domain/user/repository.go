package user

import "context"

type ListFilter struct {
	AccountID uint
	Search    string
	Page      int
	PageSize  int
}

type Repository interface {
	// Create returns ErrEmailTaken when the normalized email already exists.
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
	DeleteByAccount(ctx context.Context, accountID uint) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	// ListByAccount returns every user of the account ordered by name.
	ListByAccount(ctx context.Context, accountID uint) ([]*User, error)
}
