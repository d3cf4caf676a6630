package usecases

import (
	"context"
	"fmt"

	"licensehub/internal/application/product/dto"
	"licensehub/internal/domain/product"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/mapper"
	"licensehub/internal/shared/utils"
)

type ListProductsUseCase struct {
	productRepo product.Repository
	converter   *dto.ProductConverter
	logger      logger.Interface
}

func NewListProductsUseCase(productRepo product.Repository, converter *dto.ProductConverter, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		converter:   converter,
		logger:      logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, req dto.ListProductsRequest) (*dto.ListProductsResponse, error) {
	p := utils.ValidatePagination(req.Page, req.PageSize)

	products, total, err := uc.productRepo.List(ctx, product.ListFilter{
		Name:     req.Name,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &dto.ListProductsResponse{
		Items:      mapper.MapSlice(products, uc.converter.ToResponse),
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: utils.TotalPages(total, p.PageSize),
	}, nil
}
