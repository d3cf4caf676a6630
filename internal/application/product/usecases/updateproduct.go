package usecases

import (
	"context"
	"fmt"

	"licensehub/internal/application/product/dto"
	"licensehub/internal/domain/product"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/utils"
)

type UpdateProductUseCase struct {
	productRepo product.Repository
	converter   *dto.ProductConverter
	logger      logger.Interface
}

func NewUpdateProductUseCase(productRepo product.Repository, converter *dto.ProductConverter, logger logger.Interface) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
		converter:   converter,
		logger:      logger,
	}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	entity, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get product", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("product not found")
	}

	if err := entity.Update(req.Name, req.Description); err != nil {
		return nil, errors.NewValidationError("invalid product", err.Error())
	}

	if err := uc.productRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update product", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	uc.logger.Infow("product updated successfully", "id", id)
	return uc.converter.ToResponse(entity), nil
}
