package http

import (
	"licensehub/internal/infrastructure/auth"
	"licensehub/internal/interfaces/http/handlers"
)

type allHandlers struct {
	healthHandler            *handlers.HealthHandler
	authHandler              *handlers.AuthHandler
	accountHandler           *handlers.AccountHandler
	productHandler           *handlers.ProductHandler
	userHandler              *handlers.UserHandler
	subscriptionHandler      *handlers.SubscriptionHandler
	licenseAssignmentHandler *handlers.LicenseAssignmentHandler
}

func (c *Container) newHandlers() *allHandlers {
	u := c.ucs
	log := c.log

	hasher := auth.NewBcryptPasswordHasher(0)
	authenticator := auth.NewAdminAuthenticator(c.cfg.Auth.Admin, hasher, c.jwtSvc)

	return &allHandlers{
		healthHandler: handlers.NewHealthHandler(c.db, log),
		authHandler:   handlers.NewAuthHandler(authenticator, log),
		accountHandler: handlers.NewAccountHandler(
			u.createAccountUC, u.getAccountUC, u.listAccountsUC, u.updateAccountUC, u.deleteAccountUC, log),
		productHandler: handlers.NewProductHandler(
			u.createProductUC, u.getProductUC, u.listProductsUC, u.updateProductUC, u.deleteProductUC, log),
		userHandler: handlers.NewUserHandler(
			u.createUserUC, u.getUserUC, u.listUsersUC, u.updateUserUC, u.deleteUserUC, log),
		subscriptionHandler: handlers.NewSubscriptionHandler(
			u.createSubscriptionUC, u.getSubscriptionUC, u.listSubscriptionsUC, u.updateSubscriptionUC, u.deleteSubscriptionUC, log),
		licenseAssignmentHandler: handlers.NewLicenseAssignmentHandler(
			u.listAssignmentsUC, u.assignmentFormUC, u.createAssignmentsUC, u.destroyAssignmentsUC, u.deleteAssignmentUC, log),
	}
}
