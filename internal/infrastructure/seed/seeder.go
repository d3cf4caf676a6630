// Package seed loads sample accounts, products, users, subscriptions and
// license assignments through the application use cases.
package seed

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	accountDto "licensehub/internal/application/account/dto"
	accountUsecases "licensehub/internal/application/account/usecases"
	licensingDto "licensehub/internal/application/licensing/dto"
	licensingUsecases "licensehub/internal/application/licensing/usecases"
	productDto "licensehub/internal/application/product/dto"
	productUsecases "licensehub/internal/application/product/usecases"
	subscriptionDto "licensehub/internal/application/subscription/dto"
	subscriptionUsecases "licensehub/internal/application/subscription/usecases"
	userDto "licensehub/internal/application/user/dto"
	userUsecases "licensehub/internal/application/user/usecases"
	"licensehub/internal/shared/errors"
	"licensehub/internal/shared/logger"
)

type UseCases struct {
	CreateProduct      *productUsecases.CreateProductUseCase
	ListProducts       *productUsecases.ListProductsUseCase
	CreateAccount      *accountUsecases.CreateAccountUseCase
	ListAccounts       *accountUsecases.ListAccountsUseCase
	CreateUser         *userUsecases.CreateUserUseCase
	ListUsers          *userUsecases.ListUsersUseCase
	CreateSubscription *subscriptionUsecases.CreateSubscriptionUseCase
	CreateAssignments  *licensingUsecases.CreateAssignmentsUseCase
	AssignmentForm     *licensingUsecases.AssignmentFormUseCase
}

// Summary counts what a run created. Rows that already existed are not counted.
type Summary struct {
	Products      int
	Accounts      int
	Users         int
	Subscriptions int
	Assignments   int
	Skipped       []string
}

// Seeder is idempotent: products and accounts are matched by name, users by
// email and subscriptions by product, so a second run only fills gaps.
type Seeder struct {
	uc     UseCases
	logger logger.Interface
	now    func() time.Time
}

func NewSeeder(uc UseCases, logger logger.Interface) *Seeder {
	return &Seeder{uc: uc, logger: logger, now: time.Now}
}

func (s *Seeder) Run(ctx context.Context, data *Data) (*Summary, error) {
	summary := &Summary{}

	productIDs := make(map[string]uint, len(data.Products))
	for _, p := range data.Products {
		id, created, err := s.ensureProduct(ctx, p)
		if err != nil {
			return nil, err
		}
		productIDs[p.Name] = id
		if created {
			summary.Products++
		}
	}

	for _, a := range data.Accounts {
		if err := s.seedAccount(ctx, a, productIDs, data.AssignRatio, summary); err != nil {
			return nil, err
		}
	}

	s.logger.Infow("seeding completed",
		"products", summary.Products,
		"accounts", summary.Accounts,
		"users", summary.Users,
		"subscriptions", summary.Subscriptions,
		"assignments", summary.Assignments,
		"skipped", len(summary.Skipped))
	return summary, nil
}

func (s *Seeder) seedAccount(ctx context.Context, a AccountData, productIDs map[string]uint, ratio float64, summary *Summary) error {
	accountID, created, err := s.ensureAccount(ctx, a.Name)
	if err != nil {
		return err
	}
	if created {
		summary.Accounts++
	}

	userIDs := make([]uint, 0, len(a.Users))
	for _, u := range a.Users {
		id, created, err := s.ensureUser(ctx, accountID, u)
		if err != nil {
			return err
		}
		userIDs = append(userIDs, id)
		if created {
			summary.Users++
		}
	}

	for _, sub := range a.Subscriptions {
		productID := productIDs[sub.Product]
		created, err := s.ensureSubscription(ctx, accountID, productID, sub)
		if err != nil {
			return err
		}
		if created {
			summary.Subscriptions++
		}

		requests := assignmentRequests(userIDs, productID, sub.Licenses, ratio)
		if len(requests) == 0 {
			continue
		}
		result, err := s.uc.CreateAssignments.Execute(ctx, accountID, requests)
		if err != nil {
			return fmt.Errorf("failed to assign %s licenses for %s: %w", sub.Product, a.Name, err)
		}
		summary.Assignments += len(result.Created)
		for _, msg := range result.Errors {
			s.logger.Debugw("skipped seed assignment", "account", a.Name, "product", sub.Product, "reason", msg)
			summary.Skipped = append(summary.Skipped, msg)
		}
	}

	return s.logUsage(ctx, a.Name, accountID)
}

// assignmentRequests picks the first min(licenses*ratio, users) users.
func assignmentRequests(userIDs []uint, productID uint, licenses int, ratio float64) []licensingDto.AssignmentRequest {
	n := int(math.Floor(float64(licenses) * ratio))
	if n > len(userIDs) {
		n = len(userIDs)
	}
	requests := make([]licensingDto.AssignmentRequest, 0, n)
	for _, id := range userIDs[:n] {
		requests = append(requests, licensingDto.AssignmentRequest{UserID: id, ProductID: productID})
	}
	return requests
}

func (s *Seeder) ensureProduct(ctx context.Context, p ProductData) (uint, bool, error) {
	existing, err := s.uc.ListProducts.Execute(ctx, productDto.ListProductsRequest{Name: p.Name, PageSize: 100})
	if err != nil {
		return 0, false, err
	}
	for _, item := range existing.Items {
		if item.Name == p.Name {
			return item.ID, false, nil
		}
	}

	resp, err := s.uc.CreateProduct.Execute(ctx, productDto.CreateProductRequest{Name: p.Name, Description: p.Description})
	if err != nil {
		return 0, false, fmt.Errorf("failed to seed product %q: %w", p.Name, err)
	}
	return resp.ID, true, nil
}

func (s *Seeder) ensureAccount(ctx context.Context, name string) (uint, bool, error) {
	existing, err := s.uc.ListAccounts.Execute(ctx, accountDto.ListAccountsRequest{Name: name, PageSize: 100})
	if err != nil {
		return 0, false, err
	}
	for _, item := range existing.Items {
		if item.Name == name {
			return item.ID, false, nil
		}
	}

	resp, err := s.uc.CreateAccount.Execute(ctx, accountDto.CreateAccountRequest{Name: name})
	if err != nil {
		return 0, false, fmt.Errorf("failed to seed account %q: %w", name, err)
	}
	return resp.ID, true, nil
}

func (s *Seeder) ensureUser(ctx context.Context, accountID uint, u UserData) (uint, bool, error) {
	resp, err := s.uc.CreateUser.Execute(ctx, userDto.CreateUserRequest{AccountID: accountID, Name: u.Name, Email: u.Email})
	if err == nil {
		return resp.ID, true, nil
	}
	if !errors.IsConflictError(err) {
		return 0, false, fmt.Errorf("failed to seed user %q: %w", u.Email, err)
	}

	existing, listErr := s.uc.ListUsers.Execute(ctx, userDto.ListUsersRequest{Search: u.Email, PageSize: 100})
	if listErr != nil {
		return 0, false, listErr
	}
	for _, item := range existing.Items {
		if strings.EqualFold(item.Email, u.Email) {
			return item.ID, false, nil
		}
	}
	return 0, false, fmt.Errorf("user %q reported as taken but not found", u.Email)
}

func (s *Seeder) ensureSubscription(ctx context.Context, accountID, productID uint, sub SubscriptionData) (bool, error) {
	issuedMonths := sub.IssuedMonthsAgo
	if issuedMonths == 0 {
		issuedMonths = 1
	}
	expiresMonths := sub.ExpiresInMonths
	if expiresMonths == 0 {
		expiresMonths = 12
	}

	now := s.now()
	issuedAt := now.AddDate(0, -issuedMonths, 0)
	_, err := s.uc.CreateSubscription.Execute(ctx, accountID, subscriptionDto.CreateSubscriptionRequest{
		ProductID:        productID,
		NumberOfLicenses: sub.Licenses,
		IssuedAt:         &issuedAt,
		ExpiresAt:        now.AddDate(0, expiresMonths, 0),
	})
	switch {
	case err == nil:
		return true, nil
	case errors.IsConflictError(err):
		return false, nil
	default:
		return false, fmt.Errorf("failed to seed subscription for product %q: %w", sub.Product, err)
	}
}

func (s *Seeder) logUsage(ctx context.Context, accountName string, accountID uint) error {
	form, err := s.uc.AssignmentForm.Execute(ctx, accountID)
	if err != nil {
		return err
	}
	for _, pool := range form.Subscriptions {
		s.logger.Infow("license usage",
			"account", accountName,
			"product", pool.ProductName,
			"usage", fmt.Sprintf("%d/%d", pool.UsedLicenses, pool.NumberOfLicenses))
	}
	return nil
}
