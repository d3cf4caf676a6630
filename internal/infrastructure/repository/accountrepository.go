package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"licensehub/internal/domain/account"
	"licensehub/internal/infrastructure/persistence/mappers"
	"licensehub/internal/infrastructure/persistence/models"
	"licensehub/internal/shared/db"
	"licensehub/internal/shared/logger"
)

// AccountRepositoryImpl implements account.Repository with GORM
type AccountRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AccountMapper
	logger logger.Interface
}

func NewAccountRepository(gdb *gorm.DB, logger logger.Interface) account.Repository {
	return &AccountRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewAccountMapper(),
		logger: logger,
	}
}

func (r *AccountRepositoryImpl) Create(ctx context.Context, a *account.Account) error {
	model := r.mapper.ToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create account", "name", a.Name(), "error", err)
		return fmt.Errorf("failed to create account: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set account ID: %w", err)
	}

	r.logger.Infow("account created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *AccountRepositoryImpl) Update(ctx context.Context, a *account.Account) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.AccountModel{}).
		Where("id = ?", a.ID()).
		Updates(map[string]interface{}{
			"name":       a.Name(),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update account", "id", a.ID(), "error", result.Error)
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.AccountModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete account", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return account.ErrAccountNotFound
	}

	r.logger.Infow("account deleted", "id", id)
	return nil
}

func (r *AccountRepositoryImpl) GetByID(ctx context.Context, id uint) (*account.Account, error) {
	var model models.AccountModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get account", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *AccountRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AccountModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check account existence", "id", id, "error", err)
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return count > 0, nil
}

func (r *AccountRepositoryImpl) List(ctx context.Context, filter account.ListFilter) ([]*account.Account, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.AccountModel{})
	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count accounts", "error", err)
		return nil, 0, fmt.Errorf("failed to count accounts: %w", err)
	}

	var rows []*models.AccountModel
	if err := paginate(query.Order("name ASC, id ASC"), filter.Page, filter.PageSize).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list accounts", "error", err)
		return nil, 0, fmt.Errorf("failed to list accounts: %w", err)
	}

	entities, err := r.mapper.ToEntities(rows)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

// paginate applies LIMIT/OFFSET when a page size is given.
func paginate(query *gorm.DB, page, pageSize int) *gorm.DB {
	if pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	return query.Offset((page - 1) * pageSize).Limit(pageSize)
}
