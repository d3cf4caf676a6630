package usecases

import (
	"context"
	"fmt"

	"licensehub/internal/application/subscription/dto"
	"licensehub/internal/domain/licensing"
	"licensehub/internal/domain/subscription"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
)

type GetSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	usage            licensing.UsageReader
	logger           logger.Interface
}

func NewGetSubscriptionUseCase(subscriptionRepo subscription.Repository, usage licensing.UsageReader, logger logger.Interface) *GetSubscriptionUseCase {
	return &GetSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		usage:            usage,
		logger:           logger,
	}
}

func (uc *GetSubscriptionUseCase) Execute(ctx context.Context, id uint) (*dto.SubscriptionResponse, error) {
	entity, err := uc.subscriptionRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("subscription not found")
	}

	used, err := uc.usage.CountByPool(ctx, entity.AccountID(), entity.ProductID())
	if err != nil {
		uc.logger.Errorw("failed to count pool usage", "id", id, "error", err)
		return nil, fmt.Errorf("failed to count pool usage: %w", err)
	}

	return dto.ToSubscriptionResponse(entity, used), nil
}
