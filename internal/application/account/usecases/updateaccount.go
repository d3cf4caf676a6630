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

type UpdateAccountUseCase struct {
	accountRepo account.Repository
	logger      logger.Interface
}

func NewUpdateAccountUseCase(accountRepo account.Repository, logger logger.Interface) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *UpdateAccountUseCase) Execute(ctx context.Context, id uint, req dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	entity, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get account", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("account not found")
	}

	if err := entity.Rename(req.Name); err != nil {
		return nil, errors.NewValidationError("invalid account", err.Error())
	}

	if err := uc.accountRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update account", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	uc.logger.Infow("account updated successfully", "id", id, "name", entity.Name())
	return dto.ToAccountResponse(entity), nil
}
