package usecases

import (
	"context"
	"fmt"

	"licensehub/internal/domain/account"
	"licensehub/internal/shared/errors"
)

// requireAccount turns a missing scoping account into a NotFound for the whole call.
func requireAccount(ctx context.Context, repo account.Repository, accountID uint) error {
	exists, err := repo.Exists(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to check account: %w", err)
	}
	if !exists {
		return errors.NewNotFoundError("account not found")
	}
	return nil
}
