package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"licensehub/internal/domain/subscription"
	"licensehub/internal/infrastructure/persistence/mappers"
	"licensehub/internal/infrastructure/persistence/models"
	"licensehub/internal/shared/db"
	sharedErrors "licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(gdb *gorm.DB, logger logger.Interface) subscription.Repository {
	return &SubscriptionRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, s *subscription.Subscription) error {
	model := r.mapper.ToModel(s)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			return subscription.ErrDuplicateSubscription
		}
		r.logger.Errorw("failed to create subscription",
			"account_id", s.AccountID(),
			"product_id", s.ProductID(),
			"error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	r.logger.Infow("subscription created",
		"id", model.ID,
		"account_id", model.AccountID,
		"product_id", model.ProductID,
		"number_of_licenses", model.NumberOfLicenses)
	return nil
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, s *subscription.Subscription) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("id = ?", s.ID()).
		Updates(map[string]interface{}{
			"number_of_licenses": s.NumberOfLicenses(),
			"issued_at":          s.IssuedAt(),
			"expires_at":         s.ExpiresAt(),
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "id", s.ID(), "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return subscription.ErrSubscriptionNotFound
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.SubscriptionModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return subscription.ErrSubscriptionNotFound
	}

	r.logger.Infow("subscription deleted", "id", id)
	return nil
}

func (r *SubscriptionRepositoryImpl) DeleteByAccount(ctx context.Context, accountID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("account_id = ?", accountID).
		Delete(&models.SubscriptionModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete account subscriptions", "account_id", accountID, "error", result.Error)
		return fmt.Errorf("failed to delete account subscriptions: %w", result.Error)
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return r.first(db.GetTxFromContext(ctx, r.db).Preload("Product"), id)
}

func (r *SubscriptionRepositoryImpl) GetByIDForUpdate(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return r.first(db.ForUpdate(db.GetTxFromContext(ctx, r.db)), id)
}

func (r *SubscriptionRepositoryImpl) first(query *gorm.DB, id uint) (*subscription.Subscription, error) {
	var model models.SubscriptionModel
	if err := query.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) ListByAccount(ctx context.Context, accountID uint) ([]*subscription.Subscription, error) {
	var rows []*models.SubscriptionModel
	if err := db.GetTxFromContext(ctx, r.db).
		Preload("Product").
		Where("account_id = ?", accountID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list account subscriptions", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to list account subscriptions: %w", err)
	}
	return r.mapper.ToEntities(rows)
}

func (r *SubscriptionRepositoryImpl) ExistsByProduct(ctx context.Context, productID uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.SubscriptionModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check product subscriptions", "product_id", productID, "error", err)
		return false, fmt.Errorf("failed to check product subscriptions: %w", err)
	}
	return count > 0, nil
}
