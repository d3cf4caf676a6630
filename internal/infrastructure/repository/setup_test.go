package repository

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

	"licensehub/internal/infrastructure/persistence/models"
	"licensehub/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
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
	return gdb
}

// fixture inserts rows directly so each test only exercises the repository under test.
type fixture struct {
	t   *testing.T
	db  *gorm.DB
	log logger.Interface
}

func newFixture(t *testing.T) *fixture {
	return &fixture{t: t, db: setupTestDB(t), log: logger.NewNopLogger()}
}

func (f *fixture) ctx() context.Context { return context.Background() }

func (f *fixture) account(name string) *models.AccountModel {
	m := &models.AccountModel{Name: name}
	require.NoError(f.t, f.db.Create(m).Error)
	return m
}

func (f *fixture) product(name string) *models.ProductModel {
	m := &models.ProductModel{Name: name}
	require.NoError(f.t, f.db.Create(m).Error)
	return m
}

func (f *fixture) user(accountID uint, name, email string) *models.UserModel {
	m := &models.UserModel{AccountID: accountID, Name: name, Email: email}
	require.NoError(f.t, f.db.Create(m).Error)
	return m
}

func (f *fixture) subscription(accountID, productID uint, n int) *models.SubscriptionModel {
	m := &models.SubscriptionModel{
		AccountID:        accountID,
		ProductID:        productID,
		NumberOfLicenses: n,
		ExpiresAt:        time.Now().AddDate(1, 0, 0),
	}
	require.NoError(f.t, f.db.Create(m).Error)
	return m
}

func (f *fixture) assignment(accountID, userID, productID uint) *models.LicenseAssignmentModel {
	m := &models.LicenseAssignmentModel{AccountID: accountID, UserID: userID, ProductID: productID}
	require.NoError(f.t, f.db.Create(m).Error)
	return m
}
