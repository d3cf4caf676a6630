package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"licensehub/internal/domain/licensing"
	"licensehub/internal/domain/subscription"
	"licensehub/internal/shared/db"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
)

// DeleteSubscriptionUseCase drops a pool along with the licenses drawn from it.
type DeleteSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	assignmentRepo   licensing.Repository
	txMgr            *db.TransactionManager
	logger           logger.Interface
}

func NewDeleteSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	assignmentRepo licensing.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DeleteSubscriptionUseCase {
	return &DeleteSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		assignmentRepo:   assignmentRepo,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *DeleteSubscriptionUseCase) Execute(ctx context.Context, id uint) error {
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		sub, err := uc.subscriptionRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if sub == nil {
			return subscription.ErrSubscriptionNotFound
		}

		if err := uc.assignmentRepo.DeleteByPool(txCtx, sub.AccountID(), sub.ProductID()); err != nil {
			return err
		}
		return uc.subscriptionRepo.Delete(txCtx, id)
	})
	if err != nil {
		if stderrors.Is(err, subscription.ErrSubscriptionNotFound) {
			return errors.NewNotFoundError("subscription not found")
		}
		uc.logger.Errorw("failed to delete subscription", "id", id, "error", err)
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	uc.logger.Infow("subscription deleted successfully", "id", id)
	return nil
}
