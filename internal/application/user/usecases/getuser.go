package usecases

import (
	"context"
	"fmt"

	"licensehub/internal/application/user/dto"
	"licensehub/internal/domain/user"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
)

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, id uint) (*dto.UserResponse, error) {
	entity, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get user", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return dto.ToUserResponse(entity), nil
}
