package usecases

import (
	"context"
	"fmt"

	"licensehub/internal/application/licensing/dto"
	"licensehub/internal/domain/account"
	"licensehub/internal/domain/licensing"
	"licensehub/internal/domain/subscription"
	"licensehub/internal/domain/user"
	"licensehub/internal/shared/logger"
)

// AssignmentFormUseCase gathers the users and pools of an account, with the
// used and available license counts of each pool.
type AssignmentFormUseCase struct {
	accountRepo      account.Repository
	userRepo         user.Repository
	subscriptionRepo subscription.Repository
	assignmentRepo   licensing.Repository
	logger           logger.Interface
}

func NewAssignmentFormUseCase(
	accountRepo account.Repository,
	userRepo user.Repository,
	subscriptionRepo subscription.Repository,
	assignmentRepo licensing.Repository,
	logger logger.Interface,
) *AssignmentFormUseCase {
	return &AssignmentFormUseCase{
		accountRepo:      accountRepo,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		assignmentRepo:   assignmentRepo,
		logger:           logger,
	}
}

func (uc *AssignmentFormUseCase) Execute(ctx context.Context, accountID uint) (*dto.AssignmentFormResponse, error) {
	if err := requireAccount(ctx, uc.accountRepo, accountID); err != nil {
		return nil, err
	}

	users, err := uc.UsersOf(ctx, accountID)
	if err != nil {
		return nil, err
	}
	subs, err := uc.SubscriptionsOf(ctx, accountID)
	if err != nil {
		return nil, err
	}

	usage, err := uc.assignmentRepo.CountByAccount(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to count account usage", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to count account usage: %w", err)
	}

	resp := &dto.AssignmentFormResponse{
		AccountID:     accountID,
		Users:         make([]*dto.UserOption, 0, len(users)),
		Subscriptions: make([]*dto.PoolSummary, 0, len(subs)),
	}
	for _, u := range users {
		resp.Users = append(resp.Users, dto.ToUserOption(u))
	}
	for _, s := range subs {
		resp.Subscriptions = append(resp.Subscriptions, dto.ToPoolSummary(s, usage[s.ProductID()]))
	}
	return resp, nil
}

// UsersOf returns every user of the account.
func (uc *AssignmentFormUseCase) UsersOf(ctx context.Context, accountID uint) ([]*user.User, error) {
	users, err := uc.userRepo.ListByAccount(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to list account users", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to list account users: %w", err)
	}
	return users, nil
}

// SubscriptionsOf returns every subscription of the account with its product loaded.
func (uc *AssignmentFormUseCase) SubscriptionsOf(ctx context.Context, accountID uint) ([]*subscription.Subscription, error) {
	subs, err := uc.subscriptionRepo.ListByAccount(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to list account subscriptions", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to list account subscriptions: %w", err)
	}
	return subs, nil
}
