package usecases

import (
	"context"
	stderrors "errors"
	"fmt"

	"licensehub/internal/application/licensing/dto"
	"licensehub/internal/domain/account"
	"licensehub/internal/domain/licensing"
	"licensehub/internal/shared/db"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/mapper"
)

// CreateAssignmentsUseCase applies a batch of assignment requests to one
// account. Each candidate is validated and inserted in its own transaction
// that holds the pool's subscription row, so a rejected or failed candidate
// never affects the others and two requests cannot both take the last license.
type CreateAssignmentsUseCase struct {
	accountRepo    account.Repository
	assignmentRepo licensing.Repository
	engine         *licensing.RuleEngine
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

func NewCreateAssignmentsUseCase(
	accountRepo account.Repository,
	assignmentRepo licensing.Repository,
	engine *licensing.RuleEngine,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *CreateAssignmentsUseCase {
	return &CreateAssignmentsUseCase{
		accountRepo:    accountRepo,
		assignmentRepo: assignmentRepo,
		engine:         engine,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute attempts every request in order. Rule violations are collected in
// the result. An infrastructure failure stops the batch; the returned result
// then still lists the assignments committed before it.
func (uc *CreateAssignmentsUseCase) Execute(ctx context.Context, accountID uint, requests []dto.AssignmentRequest) (*dto.BatchResult, error) {
	if err := requireAccount(ctx, uc.accountRepo, accountID); err != nil {
		return nil, err
	}

	created := make([]*dto.AssignmentResponse, 0, len(requests))
	var messages []string

	for _, req := range requests {
		candidate := licensing.Candidate{
			AccountID: accountID,
			UserID:    req.UserID,
			ProductID: req.ProductID,
		}

		assignment, violations, err := uc.apply(ctx, candidate)
		if err != nil {
			uc.logger.Errorw("failed to apply license assignment",
				"account_id", accountID,
				"user_id", req.UserID,
				"product_id", req.ProductID,
				"committed", committedIDs(created),
				"error", err)
			partial := &dto.BatchResult{
				Errors:  licensing.DedupMessages(messages),
				Created: created,
			}
			return partial, fmt.Errorf("failed to create license assignments: %w", err)
		}

		if len(violations) > 0 {
			uc.logger.Debugw("license assignment rejected",
				"account_id", accountID,
				"user_id", req.UserID,
				"product_id", req.ProductID,
				"violations", violations)
			for _, v := range violations {
				messages = append(messages, v.Message)
			}
			continue
		}

		created = append(created, dto.ToAssignmentResponse(assignment))
	}

	result := &dto.BatchResult{
		Errors:  licensing.DedupMessages(messages),
		Created: created,
	}
	result.Success = len(result.Errors) == 0

	uc.logger.Infow("license assignment batch applied",
		"account_id", accountID,
		"requested", len(requests),
		"created", len(created),
		"errors", len(result.Errors))

	return result, nil
}

func committedIDs(created []*dto.AssignmentResponse) []uint {
	return mapper.MapSlice(created, func(a *dto.AssignmentResponse) uint { return a.ID })
}

// apply validates and persists one candidate. Rule failures come back as
// violations; err is only set for infrastructure failures.
func (uc *CreateAssignmentsUseCase) apply(ctx context.Context, c licensing.Candidate) (*licensing.Assignment, []licensing.Violation, error) {
	var (
		assignment *licensing.Assignment
		result     licensing.Result
	)

	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		result, err = uc.engine.Validate(txCtx, c)
		if err != nil {
			return err
		}
		if !result.OK() {
			return nil
		}

		a, err := licensing.NewAssignment(c.AccountID, c.UserID, c.ProductID)
		if err != nil {
			return err
		}
		if err := uc.assignmentRepo.Create(txCtx, a); err != nil {
			return err
		}
		assignment = a
		return nil
	})

	switch {
	case err == nil:
		return assignment, result.Violations, nil
	case stderrors.Is(err, licensing.ErrDuplicateAssignment):
		// lost a race against the unique index
		v, describeErr := uc.engine.DescribeDuplicate(ctx, c)
		if describeErr != nil {
			return nil, nil, describeErr
		}
		return nil, []licensing.Violation{v}, nil
	default:
		return nil, nil, err
	}
}
