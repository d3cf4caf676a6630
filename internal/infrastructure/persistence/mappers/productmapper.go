package mappers

import (
	"fmt"

	"licensehub/internal/domain/product"
	"licensehub/internal/infrastructure/persistence/models"
	"licensehub/internal/shared/mapper"
)

type ProductMapper interface {
	ToEntity(model *models.ProductModel) (*product.Product, error)
	ToModel(entity *product.Product) *models.ProductModel
	ToEntities(models []*models.ProductModel) ([]*product.Product, error)
}

type ProductMapperImpl struct{}

func NewProductMapper() ProductMapper {
	return &ProductMapperImpl{}
}

func (m *ProductMapperImpl) ToEntity(model *models.ProductModel) (*product.Product, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := product.ReconstructProduct(model.ID, model.Name, model.Description, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct product: %w", err)
	}
	return entity, nil
}

func (m *ProductMapperImpl) ToModel(entity *product.Product) *models.ProductModel {
	if entity == nil {
		return nil
	}
	return &models.ProductModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

func (m *ProductMapperImpl) ToEntities(items []*models.ProductModel) ([]*product.Product, error) {
	return mapper.MapSlicePtrWithID(items, m.ToEntity, func(model *models.ProductModel) uint { return model.ID })
}
