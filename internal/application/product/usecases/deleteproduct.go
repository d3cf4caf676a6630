package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"licensehub/internal/domain/product"
	"licensehub/internal/domain/subscription"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
)

// DeleteProductUseCase refuses to delete a product that any account subscribes to.
type DeleteProductUseCase struct {
	productRepo      product.Repository
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewDeleteProductUseCase(productRepo product.Repository, subscriptionRepo subscription.Repository, logger logger.Interface) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo:      productRepo,
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *DeleteProductUseCase) Execute(ctx context.Context, id uint) error {
	inUse, err := uc.subscriptionRepo.ExistsByProduct(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to check product subscriptions", "id", id, "error", err)
		return fmt.Errorf("failed to check product subscriptions: %w", err)
	}
	if inUse {
		return errors.NewConflictError("product has subscriptions", product.ErrProductInUse.Error())
	}

	if err := uc.productRepo.Delete(ctx, id); err != nil {
		switch {
		case stderrors.Is(err, product.ErrProductNotFound):
			return errors.NewNotFoundError("product not found")
		case stderrors.Is(err, product.ErrProductInUse):
			return errors.NewConflictError("product has subscriptions", err.Error())
		}
		uc.logger.Errorw("failed to delete product", "id", id, "error", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	uc.logger.Infow("product deleted successfully", "id", id)
	return nil
}
