package usecases

import (
	"context"
	"fmt"

	"licensehub/internal/domain/account"
	"licensehub/internal/domain/licensing"
	"licensehub/internal/domain/subscription"
	"licensehub/internal/domain/user"
	"licensehub/internal/shared/db"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
)

// DeleteAccountUseCase removes an account together with its assignments,
// users and subscriptions.
type DeleteAccountUseCase struct {
	accountRepo      account.Repository
	userRepo         user.Repository
	subscriptionRepo subscription.Repository
	assignmentRepo   licensing.Repository
	txMgr            *db.TransactionManager
	logger           logger.Interface
}

func NewDeleteAccountUseCase(
	accountRepo account.Repository,
	userRepo user.Repository,
	subscriptionRepo subscription.Repository,
	assignmentRepo licensing.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo:      accountRepo,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		assignmentRepo:   assignmentRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *DeleteAccountUseCase) Execute(ctx context.Context, id uint) error {
	exists, err := uc.accountRepo.Exists(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to check account", "id", id, "error", err)
		return fmt.Errorf("failed to check account: %w", err)
	}
	if !exists {
		return errors.NewNotFoundError("account not found")
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.assignmentRepo.DeleteByAccount(txCtx, id); err != nil {
			return err
		}
		if err := uc.userRepo.DeleteByAccount(txCtx, id); err != nil {
			return err
		}
		if err := uc.subscriptionRepo.DeleteByAccount(txCtx, id); err != nil {
			return err
		}
		return uc.accountRepo.Delete(txCtx, id)
	})
	if err != nil {
		uc.logger.Errorw("failed to delete account", "id", id, "error", err)
		return fmt.Errorf("failed to delete account: %w", err)
	}

	uc.logger.Infow("account deleted successfully", "id", id)
	return nil
}
