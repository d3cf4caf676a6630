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

type CreateProductUseCase struct {
	productRepo product.Repository
	converter   *dto.ProductConverter
	logger      logger.Interface
}

func NewCreateProductUseCase(productRepo product.Repository, converter *dto.ProductConverter, logger logger.Interface) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
		converter:   converter,
		logger:      logger,
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	entity, err := product.NewProduct(req.Name, req.Description)
	if err != nil {
		return nil, errors.NewValidationError("invalid product", err.Error())
	}

	if err := uc.productRepo.Create(ctx, entity); err != nil {
		uc.logger.Errorw("failed to persist product", "name", req.Name, "error", err)
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	uc.logger.Infow("product created successfully", "id", entity.ID(), "name", entity.Name())
	return uc.converter.ToResponse(entity), nil
}
