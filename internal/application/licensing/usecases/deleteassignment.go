package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"licensehub/internal/domain/account"
	"licensehub/internal/domain/licensing"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
)

type DeleteAssignmentUseCase struct {
	accountRepo    account.Repository
	assignmentRepo licensing.Repository
	logger         logger.Interface
}

func NewDeleteAssignmentUseCase(
	accountRepo account.Repository,
	assignmentRepo licensing.Repository,
	logger logger.Interface,
) *DeleteAssignmentUseCase {
	return &DeleteAssignmentUseCase{
		accountRepo:    accountRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// Execute removes one assignment of the account. An assignment held by
// another account is reported as not found.
func (uc *DeleteAssignmentUseCase) Execute(ctx context.Context, accountID, id uint) error {
	if err := requireAccount(ctx, uc.accountRepo, accountID); err != nil {
		return err
	}

	assignment, err := uc.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get license assignment", "id", id, "error", err)
		return fmt.Errorf("failed to get license assignment: %w", err)
	}
	if assignment == nil || assignment.AccountID() != accountID {
		return errors.NewNotFoundError("license assignment not found")
	}

	if err := uc.assignmentRepo.Delete(ctx, id); err != nil {
		if stderrors.Is(err, licensing.ErrAssignmentNotFound) {
			return errors.NewNotFoundError("license assignment not found")
		}
		uc.logger.Errorw("failed to delete license assignment", "id", id, "account_id", accountID, "error", err)
		return fmt.Errorf("failed to delete license assignment: %w", err)
	}

	uc.logger.Infow("license assignment removed", "id", id, "account_id", accountID)
	return nil
}
