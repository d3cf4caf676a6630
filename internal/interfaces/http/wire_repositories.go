package http

import (
	"gorm.io/gorm"

	"licensehub/internal/domain/account"
	"licensehub/internal/domain/licensing"
	"licensehub/internal/domain/product"
	"licensehub/internal/domain/subscription"
	"licensehub/internal/domain/user"
	"licensehub/internal/infrastructure/repository"
	"licensehub/internal/shared/logger"
)

type repositories struct {
	accountRepo      account.Repository
	productRepo      product.Repository
	userRepo         user.Repository
	subscriptionRepo subscription.Repository
	assignmentRepo   licensing.Repository
	directory        licensing.Directory
}

func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		accountRepo:      repository.NewAccountRepository(db, log),
		productRepo:      repository.NewProductRepository(db, log),
		userRepo:         repository.NewUserRepository(db, log),
		subscriptionRepo: repository.NewSubscriptionRepository(db, log),
		assignmentRepo:   repository.NewLicenseAssignmentRepository(db, log),
		directory:        repository.NewLicensingDirectory(db, log),
	}
}
