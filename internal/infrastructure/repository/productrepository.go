package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"licensehub/internal/domain/product"
	"licensehub/internal/infrastructure/persistence/mappers"
	"licensehub/internal/infrastructure/persistence/models"
	"licensehub/internal/shared/db"
	sharedErrors "licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
	logger logger.Interface
}

func NewProductRepository(gdb *gorm.DB, logger logger.Interface) product.Repository {
	return &ProductRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewProductMapper(),
		logger: logger,
	}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, p *product.Product) error {
	model := r.mapper.ToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create product", "name", p.Name(), "error", err)
		return fmt.Errorf("failed to create product: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set product ID: %w", err)
	}

	r.logger.Infow("product created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, p *product.Product) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProductModel{}).
		Where("id = ?", p.ID()).
		Updates(map[string]interface{}{
			"name":        p.Name(),
			"description": p.Description(),
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update product", "id", p.ID(), "error", result.Error)
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}
	return nil
}

// Delete fails with product.ErrProductInUse while subscriptions reference the row.
func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ProductModel{}, id)
	if result.Error != nil {
		if sharedErrors.IsForeignKeyError(result.Error) {
			return product.ErrProductInUse
		}
		r.logger.Errorw("failed to delete product", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}

	r.logger.Infow("product deleted", "id", id)
	return nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	var model models.ProductModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get product", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *ProductRepositoryImpl) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.ProductModel{})
	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count products", "error", err)
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var rows []*models.ProductModel
	if err := paginate(query.Order("name ASC, id ASC"), filter.Page, filter.PageSize).Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list products", "error", err)
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	entities, err := r.mapper.ToEntities(rows)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}
