package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"licensehub/internal/application/subscription/dto"
	"licensehub/internal/domain/licensing"
	"licensehub/internal/domain/subscription"
	"licensehub/internal/shared/db"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/utils"
)

// UpdateSubscriptionUseCase resizes or reschedules a pool. The subscription row
// is locked for the duration so a concurrent allocation cannot slip in between
// the usage count and the resize.
type UpdateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	usage            licensing.UsageReader
	txMgr            *db.TransactionManager
	logger           logger.Interface
}

func NewUpdateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	usage licensing.UsageReader,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *UpdateSubscriptionUseCase {
	return &UpdateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		usage:            usage,
		txMgr:            txMgr,
		logger:           logger,
	}
}

func (uc *UpdateSubscriptionUseCase) Execute(ctx context.Context, id uint, req dto.UpdateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	var (
		entity *subscription.Subscription
		used   int64
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		entity, err = uc.subscriptionRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if entity == nil {
			return subscription.ErrSubscriptionNotFound
		}

		used, err = uc.usage.CountByPool(txCtx, entity.AccountID(), entity.ProductID())
		if err != nil {
			return err
		}

		if req.NumberOfLicenses != nil {
			if err := entity.ResizePool(*req.NumberOfLicenses, used); err != nil {
				return err
			}
		}

		var issuedAt, expiresAt time.Time
		if req.IssuedAt != nil {
			issuedAt = *req.IssuedAt
		}
		if req.ExpiresAt != nil {
			expiresAt = *req.ExpiresAt
		}
		entity.Reschedule(issuedAt, expiresAt)

		return uc.subscriptionRepo.Update(txCtx, entity)
	})
	if err != nil {
		switch {
		case stderrors.Is(err, subscription.ErrSubscriptionNotFound):
			return nil, errors.NewNotFoundError("subscription not found")
		case stderrors.Is(err, subscription.ErrBelowUsage):
			return nil, errors.NewConflictError("cannot shrink pool below usage", err.Error())
		case stderrors.Is(err, subscription.ErrNegativeLicenses):
			return nil, errors.NewValidationError("invalid subscription", err.Error())
		}
		uc.logger.Errorw("failed to update subscription", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("subscription updated successfully",
		"id", id,
		"number_of_licenses", entity.NumberOfLicenses(),
		"used", used,
	)
	return dto.ToSubscriptionResponse(entity, used), nil
}
