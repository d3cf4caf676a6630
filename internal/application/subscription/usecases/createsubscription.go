package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"licensehub/internal/application/subscription/dto"
	"licensehub/internal/domain/account"
	"licensehub/internal/domain/product"
	"licensehub/internal/domain/subscription"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/utils"
)

type CreateSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	accountRepo      account.Repository
	productRepo      product.Repository
	logger           logger.Interface
}

func NewCreateSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	accountRepo account.Repository,
	productRepo product.Repository,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		accountRepo:      accountRepo,
		productRepo:      productRepo,
		logger:           logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, accountID uint, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	exists, err := uc.accountRepo.Exists(ctx, accountID)
	if err != nil {
		uc.logger.Errorw("failed to check account", "account_id", accountID, "error", err)
		return nil, fmt.Errorf("failed to check account: %w", err)
	}
	if !exists {
		return nil, errors.NewNotFoundError("account not found")
	}

	prod, err := uc.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		uc.logger.Errorw("failed to get product", "product_id", req.ProductID, "error", err)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if prod == nil {
		return nil, errors.NewValidationError("product must exist")
	}

	var issuedAt time.Time
	if req.IssuedAt != nil {
		issuedAt = *req.IssuedAt
	}

	entity, err := subscription.NewSubscription(accountID, req.ProductID, req.NumberOfLicenses, issuedAt, req.ExpiresAt)
	if err != nil {
		return nil, errors.NewValidationError("invalid subscription", err.Error())
	}

	if err := uc.subscriptionRepo.Create(ctx, entity); err != nil {
		if stderrors.Is(err, subscription.ErrDuplicateSubscription) {
			return nil, errors.NewConflictError("subscription already exists", err.Error())
		}
		uc.logger.Errorw("failed to persist subscription", "account_id", accountID, "product_id", req.ProductID, "error", err)
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	uc.logger.Infow("subscription created successfully",
		"id", entity.ID(),
		"account_id", accountID,
		"product_id", req.ProductID,
		"number_of_licenses", entity.NumberOfLicenses(),
	)

	resp := dto.ToSubscriptionResponse(entity, 0)
	resp.ProductName = prod.Name()
	return resp, nil
}
