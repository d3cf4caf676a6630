package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"licensehub/internal/domain/licensing"
	"licensehub/internal/domain/user"
	"licensehub/internal/shared/db"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
)

// DeleteUserUseCase removes a user and releases every license the user held.
type DeleteUserUseCase struct {
	userRepo       user.Repository
	assignmentRepo licensing.Repository
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	assignmentRepo licensing.Repository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, id uint) error {
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.assignmentRepo.DeleteByUser(txCtx, id); err != nil {
			return err
		}
		return uc.userRepo.Delete(txCtx, id)
	})
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return errors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to delete user", "id", id, "error", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	uc.logger.Infow("user deleted successfully", "id", id)
	return nil
}
