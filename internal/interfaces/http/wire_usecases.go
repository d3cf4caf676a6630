package http

import (
	"gorm.io/gorm"

	accountUsecases "licensehub/internal/application/account/usecases"
	licensingUsecases "licensehub/internal/application/licensing/usecases"
	productDto "licensehub/internal/application/product/dto"
	productUsecases "licensehub/internal/application/product/usecases"
	subscriptionUsecases "licensehub/internal/application/subscription/usecases"
	userUsecases "licensehub/internal/application/user/usecases"
	"licensehub/internal/domain/licensing"
	"licensehub/internal/infrastructure/seed"
	shareddb "licensehub/internal/shared/db"
	"licensehub/internal/shared/logger"
	"licensehub/internal/shared/services/markdown"
)

type allUseCases struct {
	// Accounts
	createAccountUC *accountUsecases.CreateAccountUseCase
	getAccountUC    *accountUsecases.GetAccountUseCase
	listAccountsUC  *accountUsecases.ListAccountsUseCase
	updateAccountUC *accountUsecases.UpdateAccountUseCase
	deleteAccountUC *accountUsecases.DeleteAccountUseCase

	// Products
	createProductUC *productUsecases.CreateProductUseCase
	getProductUC    *productUsecases.GetProductUseCase
	listProductsUC  *productUsecases.ListProductsUseCase
	updateProductUC *productUsecases.UpdateProductUseCase
	deleteProductUC *productUsecases.DeleteProductUseCase

	// Users
	createUserUC *userUsecases.CreateUserUseCase
	getUserUC    *userUsecases.GetUserUseCase
	listUsersUC  *userUsecases.ListUsersUseCase
	updateUserUC *userUsecases.UpdateUserUseCase
	deleteUserUC *userUsecases.DeleteUserUseCase

	// Subscriptions
	createSubscriptionUC *subscriptionUsecases.CreateSubscriptionUseCase
	getSubscriptionUC    *subscriptionUsecases.GetSubscriptionUseCase
	listSubscriptionsUC  *subscriptionUsecases.ListSubscriptionsUseCase
	updateSubscriptionUC *subscriptionUsecases.UpdateSubscriptionUseCase
	deleteSubscriptionUC *subscriptionUsecases.DeleteSubscriptionUseCase

	// License assignments
	listAssignmentsUC    *licensingUsecases.ListAssignmentsUseCase
	assignmentFormUC     *licensingUsecases.AssignmentFormUseCase
	createAssignmentsUC  *licensingUsecases.CreateAssignmentsUseCase
	destroyAssignmentsUC *licensingUsecases.DestroyAssignmentsUseCase
	deleteAssignmentUC   *licensingUsecases.DeleteAssignmentUseCase
}

func newUseCases(r *repositories, db *gorm.DB, log logger.Interface) *allUseCases {
	txMgr := shareddb.NewTransactionManager(db)
	converter := productDto.NewProductConverter(markdown.NewRenderer())
	engine := licensing.NewRuleEngine(r.directory, r.assignmentRepo)

	return &allUseCases{
		createAccountUC: accountUsecases.NewCreateAccountUseCase(r.accountRepo, log),
		getAccountUC:    accountUsecases.NewGetAccountUseCase(r.accountRepo, log),
		listAccountsUC:  accountUsecases.NewListAccountsUseCase(r.accountRepo, log),
		updateAccountUC: accountUsecases.NewUpdateAccountUseCase(r.accountRepo, log),
		deleteAccountUC: accountUsecases.NewDeleteAccountUseCase(
			r.accountRepo, r.userRepo, r.subscriptionRepo, r.assignmentRepo, txMgr, log),

		createProductUC: productUsecases.NewCreateProductUseCase(r.productRepo, converter, log),
		getProductUC:    productUsecases.NewGetProductUseCase(r.productRepo, converter, log),
		listProductsUC:  productUsecases.NewListProductsUseCase(r.productRepo, converter, log),
		updateProductUC: productUsecases.NewUpdateProductUseCase(r.productRepo, converter, log),
		deleteProductUC: productUsecases.NewDeleteProductUseCase(r.productRepo, r.subscriptionRepo, log),

		createUserUC: userUsecases.NewCreateUserUseCase(r.userRepo, r.accountRepo, log),
		getUserUC:    userUsecases.NewGetUserUseCase(r.userRepo, log),
		listUsersUC:  userUsecases.NewListUsersUseCase(r.userRepo, log),
		updateUserUC: userUsecases.NewUpdateUserUseCase(r.userRepo, log),
		deleteUserUC: userUsecases.NewDeleteUserUseCase(r.userRepo, r.assignmentRepo, txMgr, log),

		createSubscriptionUC: subscriptionUsecases.NewCreateSubscriptionUseCase(
			r.subscriptionRepo, r.accountRepo, r.productRepo, log),
		getSubscriptionUC: subscriptionUsecases.NewGetSubscriptionUseCase(r.subscriptionRepo, r.assignmentRepo, log),
		listSubscriptionsUC: subscriptionUsecases.NewListSubscriptionsUseCase(
			r.subscriptionRepo, r.accountRepo, r.assignmentRepo, log),
		updateSubscriptionUC: subscriptionUsecases.NewUpdateSubscriptionUseCase(
			r.subscriptionRepo, r.assignmentRepo, txMgr, log),
		deleteSubscriptionUC: subscriptionUsecases.NewDeleteSubscriptionUseCase(
			r.subscriptionRepo, r.assignmentRepo, txMgr, log),

		listAssignmentsUC: licensingUsecases.NewListAssignmentsUseCase(r.accountRepo, r.assignmentRepo, log),
		assignmentFormUC: licensingUsecases.NewAssignmentFormUseCase(
			r.accountRepo, r.userRepo, r.subscriptionRepo, r.assignmentRepo, log),
		createAssignmentsUC: licensingUsecases.NewCreateAssignmentsUseCase(
			r.accountRepo, r.assignmentRepo, engine, txMgr, log),
		destroyAssignmentsUC: licensingUsecases.NewDestroyAssignmentsUseCase(r.accountRepo, r.assignmentRepo, log),
		deleteAssignmentUC:   licensingUsecases.NewDeleteAssignmentUseCase(r.accountRepo, r.assignmentRepo, log),
	}
}

// seedUseCases exposes the subset the seeder drives.
func (u *allUseCases) seedUseCases() seed.UseCases {
	return seed.UseCases{
		CreateProduct:      u.createProductUC,
		ListProducts:       u.listProductsUC,
		CreateAccount:      u.createAccountUC,
		ListAccounts:       u.listAccountsUC,
		CreateUser:         u.createUserUC,
		ListUsers:          u.listUsersUC,
		CreateSubscription: u.createSubscriptionUC,
		CreateAssignments:  u.createAssignmentsUC,
		AssignmentForm:     u.assignmentFormUC,
	}
}

// NewSeeder builds a seeder over db without the HTTP stack.
func NewSeeder(db *gorm.DB, log logger.Interface) *seed.Seeder {
	ucs := newUseCases(newRepositories(db, log), db, log)
	return seed.NewSeeder(ucs.seedUseCases(), log)
}
