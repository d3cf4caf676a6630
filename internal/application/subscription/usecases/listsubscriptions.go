package usecases

import (
	"context"
	"fmt"

	"licensehub/internal/application/subscription/dto"
	"licensehub/internal/domain/account"
	"licensehub/internal/domain/licensing"
	"licensehub/internal/domain/subscription"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
)

// ListSubscriptionsUseCase returns an account's pools with their usage.
type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	accountRepo      account.Repository
	assignmentRepo   licensing.Repository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	accountRepo account.Repository,
	assignmentRepo licensing.Repository,
	logger logger.Interface,
) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		accountRepo:      accountRepo,
		assignmentRepo:   assignmentRepo,
		logger:           logger,
	}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, accountID uint) ([]*dto.SubscriptionResponse, error) {
	exists, err := uc.accountRepo.Exists(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to check account", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to check account: %w", err)
	}
	if !exists {
		return nil, errors.NewNotFoundError("account not found")
	}

	subs, err := uc.subscriptionRepo.ListByAccount(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	usage, err := uc.assignmentRepo.CountByAccount(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to count account usage", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to count account usage: %w", err)
	}

	items := make([]*dto.SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		items = append(items, dto.ToSubscriptionResponse(s, usage[s.ProductID()]))
	}
	return items, nil
}
