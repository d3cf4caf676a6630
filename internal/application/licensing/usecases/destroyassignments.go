package usecases

import (
	"context"
	"fmt"

	"licensehub/internal/application/licensing/dto"
	"licensehub/internal/domain/account"
	"licensehub/internal/domain/licensing"
	"licensehub/internal/shared/logger"
)

// DestroyAssignmentsUseCase removes every assignment of the account matching
// any of userIDs and any of productIDs. Empty lists delete nothing.
type DestroyAssignmentsUseCase struct {
	accountRepo    account.Repository
	assignmentRepo licensing.Repository
	logger         logger.Interface
}

func NewDestroyAssignmentsUseCase(accountRepo account.Repository, assignmentRepo licensing.Repository, logger logger.Interface) *DestroyAssignmentsUseCase {
	return &DestroyAssignmentsUseCase{
		accountRepo:    accountRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (uc *DestroyAssignmentsUseCase) Execute(ctx context.Context, accountID uint, userIDs, productIDs []uint) (*dto.DestroyResult, error) {
	if err := requireAccount(ctx, uc.accountRepo, accountID); err != nil {
		return nil, err
	}

	deleted, err := uc.assignmentRepo.DeleteBatch(ctx, accountID, userIDs, productIDs)
	if err != nil {
		uc.logger.Errorw("failed to destroy license assignments", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to destroy license assignments: %w", err)
	}

	uc.logger.Infow("license assignments destroyed",
		"account_id", accountID,
		"user_ids", userIDs,
		"product_ids", productIDs,
		"deleted", deleted)

	return &dto.DestroyResult{Deleted: deleted}, nil
}
