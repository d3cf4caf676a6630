package licensing

import "context"

// UsageReader answers the pool usage questions the rule engine asks.
type UsageReader interface {
	CountByPool(ctx context.Context, accountID, productID uint) (int64, error)
	Exists(ctx context.Context, accountID, userID, productID uint) (bool, error)
}

type Repository interface {
	UsageReader

	Create(ctx context.Context, a *Assignment) error
	GetByID(ctx context.Context, id uint) (*Assignment, error)
	Delete(ctx context.Context, id uint) error
	// DeleteBatch removes every assignment of the account whose user is in
	// userIDs and whose product is in productIDs.
	DeleteBatch(ctx context.Context, accountID uint, userIDs, productIDs []uint) (int64, error)
	DeleteByAccount(ctx context.Context, accountID uint) error
	DeleteByUser(ctx context.Context, userID uint) error
	DeleteByPool(ctx context.Context, accountID, productID uint) error
	// CountByAccount returns used licenses per product id.
	CountByAccount(ctx context.Context, accountID uint) (map[uint]int64, error)
	ListByAccount(ctx context.Context, accountID uint) ([]*AssignmentDetail, error)
}

type UserRef struct {
	ID        uint
	AccountID uint
	Name      string
	Email     string
}

type ProductRef struct {
	ID   uint
	Name string
}

// Pool is the subscription row backing an (account, product) pair.
type Pool struct {
	SubscriptionID   uint
	AccountID        uint
	ProductID        uint
	NumberOfLicenses int
}

// Directory resolves the rows a candidate refers to. Finders return nil, nil
// when the row does not exist.
type Directory interface {
	AccountExists(ctx context.Context, accountID uint) (bool, error)
	FindUser(ctx context.Context, userID uint) (*UserRef, error)
	FindProduct(ctx context.Context, productID uint) (*ProductRef, error)
	// FindPool locks the subscription row when ctx carries a transaction.
	// Callers read it before any other row so the lock precedes the snapshot.
	FindPool(ctx context.Context, accountID, productID uint) (*Pool, error)
}
