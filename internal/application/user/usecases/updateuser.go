package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"licensehub/internal/application/user/dto"
	"licensehub/internal/domain/user"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/utils"
)

type UpdateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	entity, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get user", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := entity.UpdateProfile(req.Name, req.Email); err != nil {
		return nil, errors.NewValidationError("invalid user", err.Error())
	}

	if err := uc.userRepo.Update(ctx, entity); err != nil {
		if stderrors.Is(err, user.ErrEmailTaken) {
			return nil, errors.NewConflictError("user with this email already exists", entity.Email())
		}
		uc.logger.Errorw("failed to update user", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user updated successfully", "id", id)
	return dto.ToUserResponse(entity), nil
}
