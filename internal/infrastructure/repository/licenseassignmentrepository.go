package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"licensehub/internal/domain/licensing"
	"licensehub/internal/infrastructure/persistence/mappers"
	"licensehub/internal/infrastructure/persistence/models"
	"licensehub/internal/shared/db"
	sharedErrors "licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
)

type LicenseAssignmentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.LicenseAssignmentMapper
	logger logger.Interface
}

func NewLicenseAssignmentRepository(gdb *gorm.DB, logger logger.Interface) licensing.Repository {
	return &LicenseAssignmentRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewLicenseAssignmentMapper(),
		logger: logger,
	}
}

func (r *LicenseAssignmentRepositoryImpl) Create(ctx context.Context, a *licensing.Assignment) error {
	model := r.mapper.ToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			return licensing.ErrDuplicateAssignment
		}
		r.logger.Errorw("failed to create license assignment",
			"account_id", a.AccountID(),
			"user_id", a.UserID(),
			"product_id", a.ProductID(),
			"error", err)
		return fmt.Errorf("failed to create license assignment: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set license assignment ID: %w", err)
	}
	return nil
}

func (r *LicenseAssignmentRepositoryImpl) GetByID(ctx context.Context, id uint) (*licensing.Assignment, error) {
	var model models.LicenseAssignmentModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get license assignment", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get license assignment: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *LicenseAssignmentRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.LicenseAssignmentModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete license assignment", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete license assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return licensing.ErrAssignmentNotFound
	}

	r.logger.Infow("license assignment deleted", "id", id)
	return nil
}

func (r *LicenseAssignmentRepositoryImpl) DeleteBatch(ctx context.Context, accountID uint, userIDs, productIDs []uint) (int64, error) {
	if len(userIDs) == 0 || len(productIDs) == 0 {
		return 0, nil
	}

	result := db.GetTxFromContext(ctx, r.db).
		Where("account_id = ? AND user_id IN ? AND product_id IN ?", accountID, userIDs, productIDs).
		Delete(&models.LicenseAssignmentModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete license assignments",
			"account_id", accountID,
			"user_ids", userIDs,
			"product_ids", productIDs,
			"error", result.Error)
		return 0, fmt.Errorf("failed to delete license assignments: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *LicenseAssignmentRepositoryImpl) DeleteByAccount(ctx context.Context, accountID uint) error {
	return r.deleteWhere(ctx, "account_id = ?", accountID)
}

func (r *LicenseAssignmentRepositoryImpl) DeleteByUser(ctx context.Context, userID uint) error {
	return r.deleteWhere(ctx, "user_id = ?", userID)
}

func (r *LicenseAssignmentRepositoryImpl) DeleteByPool(ctx context.Context, accountID, productID uint) error {
	return r.deleteWhere(ctx, "account_id = ? AND product_id = ?", accountID, productID)
}

func (r *LicenseAssignmentRepositoryImpl) deleteWhere(ctx context.Context, cond string, args ...interface{}) error {
	result := db.GetTxFromContext(ctx, r.db).Where(cond, args...).Delete(&models.LicenseAssignmentModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete license assignments", "condition", cond, "args", args, "error", result.Error)
		return fmt.Errorf("failed to delete license assignments: %w", result.Error)
	}
	return nil
}

func (r *LicenseAssignmentRepositoryImpl) CountByPool(ctx context.Context, accountID, productID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.LicenseAssignmentModel{}).
		Where("account_id = ? AND product_id = ?", accountID, productID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count license assignments",
			"account_id", accountID,
			"product_id", productID,
			"error", err)
		return 0, fmt.Errorf("failed to count license assignments: %w", err)
	}
	return count, nil
}

func (r *LicenseAssignmentRepositoryImpl) Exists(ctx context.Context, accountID, userID, productID uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.LicenseAssignmentModel{}).
		Where("account_id = ? AND user_id = ? AND product_id = ?", accountID, userID, productID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check license assignment existence", "error", err)
		return false, fmt.Errorf("failed to check license assignment existence: %w", err)
	}
	return count > 0, nil
}

func (r *LicenseAssignmentRepositoryImpl) CountByAccount(ctx context.Context, accountID uint) (map[uint]int64, error) {
	var rows []struct {
		ProductID uint
		Used      int64
	}
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.LicenseAssignmentModel{}).
		Select("product_id, COUNT(*) AS used").
		Where("account_id = ?", accountID).
		Group("product_id").
		Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to count account license usage", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to count account license usage: %w", err)
	}

	usage := make(map[uint]int64, len(rows))
	for _, row := range rows {
		usage[row.ProductID] = row.Used
	}
	return usage, nil
}

func (r *LicenseAssignmentRepositoryImpl) ListByAccount(ctx context.Context, accountID uint) ([]*licensing.AssignmentDetail, error) {
	var rows []*models.LicenseAssignmentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Preload("User").
		Preload("Product").
		Where("account_id = ?", accountID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list license assignments", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to list license assignments: %w", err)
	}
	return r.mapper.ToDetails(rows)
}
