package usecases

import (
	"context"
	"fmt"

	"licensehub/internal/application/licensing/dto"
	"licensehub/internal/domain/account"
	"licensehub/internal/domain/licensing"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/mapper"
)

type ListAssignmentsUseCase struct {
	accountRepo    account.Repository
	assignmentRepo licensing.Repository
	logger         logger.Interface
}

func NewListAssignmentsUseCase(accountRepo account.Repository, assignmentRepo licensing.Repository, logger logger.Interface) *ListAssignmentsUseCase {
	return &ListAssignmentsUseCase{
		accountRepo:    accountRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *ListAssignmentsUseCase) Execute(ctx context.Context, accountID uint) ([]*dto.AssignmentResponse, error) {
	if err := requireAccount(ctx, uc.accountRepo, accountID); err != nil {
		return nil, err
	}

	details, err := uc.assignmentRepo.ListByAccount(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to list license assignments", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to list license assignments: %w", err)
	}

	items := mapper.MapSlice(details, dto.ToAssignmentDetailResponse)
	if items == nil {
		items = []*dto.AssignmentResponse{}
	}
	return items, nil
}
