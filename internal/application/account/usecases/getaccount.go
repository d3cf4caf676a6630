package usecases

import (
	"context"
	"fmt"

	"licensehub/internal/application/account/dto"
	"licensehub/internal/domain/account"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
)

type GetAccountUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewGetAccountUseCase(accountRepo account.Repository, logger logger.Interface) *GetAccountUseCase {
	return &GetAccountUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *GetAccountUseCase) Execute(ctx context.Context, id uint) (*dto.AccountResponse, error) {
	if id == 0 {
		return nil, errors.NewValidationError("account ID cannot be zero")
	}

	entity, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get account", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("account not found")
	}

	return dto.ToAccountResponse(entity), nil
}
