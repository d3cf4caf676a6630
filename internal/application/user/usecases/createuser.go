package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"licensehub/internal/application/user/dto"
	"licensehub/internal/domain/account"
	"licensehub/internal/domain/user"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/utils"
)

type CreateUserUseCase struct {
	userRepo    user.Repository
	accountRepo account.Repository
	logger      logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, accountRepo account.Repository, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:    userRepo,
		accountRepo: accountRepo,
		logger:      logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	exists, err := uc.accountRepo.Exists(ctx, req.AccountID)
	if err != nil {
		uc.logger.Errorw("failed to check account", "account_id", req.AccountID, "error", err)
		return nil, fmt.Errorf("failed to check account: %w", err)
	}
	if !exists {
		return nil, errors.NewValidationError("account must exist")
	}

	existing, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		uc.logger.Errorw("failed to check existing user", "email", req.Email, "error", err)
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		uc.logger.Warnw("user with email already exists", "email", req.Email)
		return nil, errors.NewConflictError("user with this email already exists", req.Email)
	}

	entity, err := user.NewUser(req.AccountID, req.Name, req.Email)
	if err != nil {
		return nil, errors.NewValidationError("invalid user", err.Error())
	}

	if err := uc.userRepo.Create(ctx, entity); err != nil {
		if stderrors.Is(err, user.ErrEmailTaken) {
			return nil, errors.NewConflictError("user with this email already exists", req.Email)
		}
		uc.logger.Errorw("failed to persist user", "email", req.Email, "error", err)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	uc.logger.Infow("user created successfully", "id", entity.ID(), "account_id", entity.AccountID(), "email", entity.Email())
	return dto.ToUserResponse(entity), nil
}
