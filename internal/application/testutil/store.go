// Package testutil wires the GORM repositories against an in-memory SQLite
// database for use-case tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"licensehub/internal/domain/account"
	"licensehub/internal/domain/licensing"
	"licensehub/internal/domain/product"
	"licensehub/internal/domain/subscription"
	"licensehub/internal/domain/user"
	"licensehub/internal/infrastructure/persistence/models"
	"licensehub/internal/infrastructure/repository"
	"licensehub/internal/shared/db"
	"licensehub/internal/shared/logger"
)

type Store struct {
	t *testing.T

	DB            *gorm.DB
	TxMgr         *db.TransactionManager
	Log           logger.Interface
	Accounts      account.Repository
	Products      product.Repository
	Users         user.Repository
	Subscriptions subscription.Repository
	Assignments   licensing.Repository
	Directory     licensing.Directory
}

func NewStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(models.All()...))

	log := logger.NewNopLogger()
	return &Store{
		t:             t,
		DB:            gdb,
		TxMgr:         db.NewTransactionManager(gdb),
		Log:           log,
		Accounts:      repository.NewAccountRepository(gdb, log),
		Products:      repository.NewProductRepository(gdb, log),
		Users:         repository.NewUserRepository(gdb, log),
		Subscriptions: repository.NewSubscriptionRepository(gdb, log),
		Assignments:   repository.NewLicenseAssignmentRepository(gdb, log),
		Directory:     repository.NewLicensingDirectory(gdb, log),
	}
}

func (s *Store) Ctx() context.Context { return context.Background() }

func (s *Store) Account(name string) *account.Account {
	a, err := account.NewAccount(name)
	require.NoError(s.t, err)
	require.NoError(s.t, s.Accounts.Create(s.Ctx(), a))
	return a
}

func (s *Store) Product(name string) *product.Product {
	p, err := product.NewProduct(name, "")
	require.NoError(s.t, err)
	require.NoError(s.t, s.Products.Create(s.Ctx(), p))
	return p
}

func (s *Store) User(accountID uint, name, email string) *user.User {
	u, err := user.NewUser(accountID, name, email)
	require.NoError(s.t, err)
	require.NoError(s.t, s.Users.Create(s.Ctx(), u))
	return u
}

func (s *Store) Subscription(accountID, productID uint, licenses int) *subscription.Subscription {
	sub, err := subscription.NewSubscription(accountID, productID, licenses, time.Time{}, time.Now().AddDate(1, 0, 0))
	require.NoError(s.t, err)
	require.NoError(s.t, s.Subscriptions.Create(s.Ctx(), sub))
	return sub
}

func (s *Store) Assign(accountID, userID, productID uint) *licensing.Assignment {
	a, err := licensing.NewAssignment(accountID, userID, productID)
	require.NoError(s.t, err)
	require.NoError(s.t, s.Assignments.Create(s.Ctx(), a))
	return a
}

// Used counts the assignments in one pool.
func (s *Store) Used(accountID, productID uint) int64 {
	n, err := s.Assignments.CountByPool(s.Ctx(), accountID, productID)
	require.NoError(s.t, err)
	return n
}
