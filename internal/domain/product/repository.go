package product

import "context"

type ListFilter struct {
	Name     string
	Page     int
	PageSize int
}

type Repository interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, filter ListFilter) ([]*Product, int64, error)
}
