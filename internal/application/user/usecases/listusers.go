package usecases

import (
	"context"
	"fmt"

	"licensehub/internal/application/user/dto"
	"licensehub/internal/domain/user"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/mapper"
	"licensehub/internal/shared/utils"
)

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, req dto.ListUsersRequest) (*dto.ListUsersResponse, error) {
	p := utils.ValidatePagination(req.Page, req.PageSize)

	users, total, err := uc.userRepo.List(ctx, user.ListFilter{
		AccountID: req.AccountID,
		Search:    req.Search,
		Page:      p.Page,
		PageSize:  p.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &dto.ListUsersResponse{
		Items:      mapper.MapSlice(users, dto.ToUserResponse),
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: utils.TotalPages(total, p.PageSize),
	}, nil
}
