package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"licensehub/internal/domain/licensing"
	"licensehub/internal/infrastructure/persistence/models"
	"licensehub/internal/shared/db"
	"licensehub/internal/shared/logger"
)

// LicensingDirectoryImpl resolves the rows a license candidate refers to.
type LicensingDirectoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewLicensingDirectory(gdb *gorm.DB, logger logger.Interface) licensing.Directory {
	return &LicensingDirectoryImpl{db: gdb, logger: logger}
}

func (d *LicensingDirectoryImpl) AccountExists(ctx context.Context, accountID uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, d.db).
		Model(&models.AccountModel{}).
		Where("id = ?", accountID).
		Count(&count).Error; err != nil {
		d.logger.Errorw("failed to look up account", "account_id", accountID, "error", err)
		return false, fmt.Errorf("failed to look up account: %w", err)
	}
	return count > 0, nil
}

func (d *LicensingDirectoryImpl) FindUser(ctx context.Context, userID uint) (*licensing.UserRef, error) {
	var model models.UserModel
	if err := db.GetTxFromContext(ctx, d.db).First(&model, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		d.logger.Errorw("failed to look up user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return &licensing.UserRef{
		ID:        model.ID,
		AccountID: model.AccountID,
		Name:      model.Name,
		Email:     model.Email,
	}, nil
}

func (d *LicensingDirectoryImpl) FindProduct(ctx context.Context, productID uint) (*licensing.ProductRef, error) {
	var model models.ProductModel
	if err := db.GetTxFromContext(ctx, d.db).First(&model, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		d.logger.Errorw("failed to look up product", "product_id", productID, "error", err)
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	return &licensing.ProductRef{ID: model.ID, Name: model.Name}, nil
}

// FindPool takes SELECT ... FOR UPDATE on the subscription row when running
// inside a transaction, so concurrent allocations against one pool queue up.
func (d *LicensingDirectoryImpl) FindPool(ctx context.Context, accountID, productID uint) (*licensing.Pool, error) {
	query := db.GetTxFromContext(ctx, d.db)
	if db.InTransaction(ctx) {
		query = db.ForUpdate(query)
	}

	var model models.SubscriptionModel
	if err := query.
		Where("account_id = ? AND product_id = ?", accountID, productID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		d.logger.Errorw("failed to look up subscription",
			"account_id", accountID,
			"product_id", productID,
			"error", err)
		return nil, fmt.Errorf("failed to look up subscription: %w", err)
	}

	return &licensing.Pool{
		SubscriptionID:   model.ID,
		AccountID:        model.AccountID,
		ProductID:        model.ProductID,
		NumberOfLicenses: model.NumberOfLicenses,
	}, nil
}
