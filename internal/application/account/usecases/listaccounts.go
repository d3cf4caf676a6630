package usecases

import (
	"context"
	"fmt"

	"licensehub/internal/application/account/dto"
	"licensehub/internal/domain/account"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/mapper"
	"licensehub/internal/shared/utils"
)

type ListAccountsUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewListAccountsUseCase(accountRepo account.Repository, logger logger.Interface) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *ListAccountsUseCase) Execute(ctx context.Context, req dto.ListAccountsRequest) (*dto.ListAccountsResponse, error) {
	p := utils.ValidatePagination(req.Page, req.PageSize)

	accounts, total, err := uc.accountRepo.List(ctx, account.ListFilter{
		Name:     req.Name,
		Page:     p.Page,
		PageSize: p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list accounts", "error", err)
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return &dto.ListAccountsResponse{
		Items:      mapper.MapSlice(accounts, dto.ToAccountResponse),
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: utils.TotalPages(total, p.PageSize),
	}, nil
}
