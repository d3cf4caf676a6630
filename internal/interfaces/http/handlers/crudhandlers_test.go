package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productDto "licensehub/internal/application/product/dto"
	productUsecases "licensehub/internal/application/product/usecases"
	subscriptionDto "licensehub/internal/application/subscription/dto"
	subscriptionUsecases "licensehub/internal/application/subscription/usecases"
	storetest "licensehub/internal/application/testutil"
	userUsecases "licensehub/internal/application/user/usecases"
	"licensehub/internal/interfaces/http/handlers/testutil"
	"licensehub/internal/shared/services/markdown"
)

func newProductHandler(store *storetest.Store) *ProductHandler {
	converter := productDto.NewProductConverter(markdown.NewRenderer())
	return NewProductHandler(
		productUsecases.NewCreateProductUseCase(store.Products, converter, store.Log),
		productUsecases.NewGetProductUseCase(store.Products, converter, store.Log),
		productUsecases.NewListProductsUseCase(store.Products, converter, store.Log),
		productUsecases.NewUpdateProductUseCase(store.Products, converter, store.Log),
		productUsecases.NewDeleteProductUseCase(store.Products, store.Subscriptions, store.Log),
		store.Log,
	)
}

func newUserHandler(store *storetest.Store) *UserHandler {
	return NewUserHandler(
		userUsecases.NewCreateUserUseCase(store.Users, store.Accounts, store.Log),
		userUsecases.NewGetUserUseCase(store.Users, store.Log),
		userUsecases.NewListUsersUseCase(store.Users, store.Log),
		userUsecases.NewUpdateUserUseCase(store.Users, store.Log),
		userUsecases.NewDeleteUserUseCase(store.Users, store.Assignments, store.TxMgr, store.Log),
		store.Log,
	)
}

func newSubscriptionHandler(store *storetest.Store) *SubscriptionHandler {
	return NewSubscriptionHandler(
		subscriptionUsecases.NewCreateSubscriptionUseCase(store.Subscriptions, store.Accounts, store.Products, store.Log),
		subscriptionUsecases.NewGetSubscriptionUseCase(store.Subscriptions, store.Assignments, store.Log),
		subscriptionUsecases.NewListSubscriptionsUseCase(store.Subscriptions, store.Accounts, store.Assignments, store.Log),
		subscriptionUsecases.NewUpdateSubscriptionUseCase(store.Subscriptions, store.Assignments, store.TxMgr, store.Log),
		subscriptionUsecases.NewDeleteSubscriptionUseCase(store.Subscriptions, store.Assignments, store.TxMgr, store.Log),
		store.Log,
	)
}

func TestProductHandler_CreateRendersDescription(t *testing.T) {
	store := storetest.NewStore(t)

	c, w := testutil.NewTestContext(http.MethodPost, "/", productDto.CreateProductRequest{
		Name:        "Editor",
		Description: "**fast** <script>alert(1)</script>",
	})
	newProductHandler(store).Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var product productDto.ProductResponse
	require.NoError(t, json.Unmarshal(resp.Data, &product))
	assert.Contains(t, product.DescriptionHTML, "<strong>fast</strong>")
	assert.NotContains(t, product.DescriptionHTML, "<script>")
}

func TestProductHandler_DeleteSubscribedIsConflict(t *testing.T) {
	store := storetest.NewStore(t)
	acme := store.Account("Acme")
	editor := store.Product("Editor")
	store.Subscription(acme.ID(), editor.ID(), 1)

	c, w := testutil.NewTestContext(http.MethodDelete, "/", nil)
	testutil.SetURLParam(c, "id", fmt.Sprint(editor.ID()))
	newProductHandler(store).Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUserHandler_CreateDuplicateEmailIsConflict(t *testing.T) {
	store := storetest.NewStore(t)
	acme := store.Account("Acme")
	store.User(acme.ID(), "Ada", "ada@acme.test")

	c, w := testutil.NewTestContext(http.MethodPost, "/", map[string]interface{}{
		"account_id": acme.ID(),
		"name":       "Another Ada",
		"email":      "ADA@acme.test",
	})
	newUserHandler(store).Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUserHandler_ListByAccount(t *testing.T) {
	store := storetest.NewStore(t)
	acme := store.Account("Acme")
	globex := store.Account("Globex")
	store.User(acme.ID(), "Ada", "ada@acme.test")
	store.User(globex.ID(), "Gus", "gus@globex.test")

	c, w := testutil.NewTestContext(http.MethodGet, fmt.Sprintf("/admin/users?account_id=%d", globex.ID()), nil)
	newUserHandler(store).List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var list struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(1), list.Total)
}

func TestSubscriptionHandler_CreateAndShrink(t *testing.T) {
	store := storetest.NewStore(t)
	acme := store.Account("Acme")
	editor := store.Product("Editor")
	ada := store.User(acme.ID(), "Ada", "ada@acme.test")
	bob := store.User(acme.ID(), "Bob", "bob@acme.test")
	handler := newSubscriptionHandler(store)

	c, w := testutil.NewTestContext(http.MethodPost, "/", subscriptionDto.CreateSubscriptionRequest{
		ProductID:        editor.ID(),
		NumberOfLicenses: 2,
		ExpiresAt:        time.Now().AddDate(1, 0, 0),
	})
	testutil.SetURLParam(c, "id", fmt.Sprint(acme.ID()))
	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var sub subscriptionDto.SubscriptionResponse
	require.NoError(t, json.Unmarshal(resp.Data, &sub))

	store.Assign(acme.ID(), ada.ID(), editor.ID())
	store.Assign(acme.ID(), bob.ID(), editor.ID())

	one := 1
	c, w = testutil.NewTestContext(http.MethodPatch, "/", subscriptionDto.UpdateSubscriptionRequest{NumberOfLicenses: &one})
	testutil.SetURLParam(c, "id", fmt.Sprint(sub.ID))
	handler.Update(c)
	assert.Equal(t, http.StatusConflict, w.Code)

	c, w = testutil.NewTestContext(http.MethodPost, "/", subscriptionDto.CreateSubscriptionRequest{
		ProductID:        editor.ID(),
		NumberOfLicenses: 2,
		ExpiresAt:        time.Now().AddDate(1, 0, 0),
	})
	testutil.SetURLParam(c, "id", fmt.Sprint(acme.ID()))
	handler.Create(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSubscriptionHandler_ListUnknownAccountIs404(t *testing.T) {
	store := storetest.NewStore(t)

	c, w := testutil.NewTestContext(http.MethodGet, "/", nil)
	testutil.SetURLParam(c, "id", "77")
	newSubscriptionHandler(store).List(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
