package usecases

import (
	"context"
	"fmt"

	"licensehub/internal/application/product/dto"
	"licensehub/internal/domain/product"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
)

type GetProductUseCase struct {
	productRepo product.Repository
	converter   *dto.ProductConverter
	logger      logger.Interface
}

func NewGetProductUseCase(productRepo product.Repository, converter *dto.ProductConverter, logger logger.Interface) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		converter:   converter,
		logger:      logger,
	}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	entity, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get product", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("product not found")
	}
	return uc.converter.ToResponse(entity), nil
}
