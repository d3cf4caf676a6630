package usecases

import (
	"context"
	"fmt"

	"licensehub/internal/application/account/dto"
	"licensehub/internal/domain/account"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/utils"
)

type CreateAccountUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewCreateAccountUseCase(accountRepo account.Repository, logger logger.Interface) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *CreateAccountUseCase) Execute(ctx context.Context, req dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	entity, err := account.NewAccount(req.Name)
	if err != nil {
		return nil, errors.NewValidationError("invalid account", err.Error())
	}

	if err := uc.accountRepo.Create(ctx, entity); err != nil {
		uc.logger.Errorw("failed to persist account", "name", req.Name, "error", err)
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	uc.logger.Infow("account created successfully", "id", entity.ID(), "name", entity.Name())
	return dto.ToAccountResponse(entity), nil
}
