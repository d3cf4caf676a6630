package account

import "context"

type ListFilter struct {
	Name     string
	Page     int
	PageSize int
}

type Repository interface {
	Create(ctx context.Context, a *Account) error
	Update(ctx context.Context, a *Account) error
	// Delete removes the account row only; dependent rows are the caller's concern.
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Account, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*Account, int64, error)
}
