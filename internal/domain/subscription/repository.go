package subscription

import "context"

type Repository interface {
	// Create returns ErrDuplicateSubscription when the account already holds
	// a pool for the product.
	Create(ctx context.Context, s *Subscription) error
	Update(ctx context.Context, s *Subscription) error
	Delete(ctx context.Context, id uint) error
	DeleteByAccount(ctx context.Context, accountID uint) error
	GetByID(ctx context.Context, id uint) (*Subscription, error)
	// GetByIDForUpdate locks the row for the rest of the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id uint) (*Subscription, error)
	// ListByAccount preloads each subscription's product.
	ListByAccount(ctx context.Context, accountID uint) ([]*Subscription, error)
	ExistsByProduct(ctx context.Context, productID uint) (bool, error)
}
