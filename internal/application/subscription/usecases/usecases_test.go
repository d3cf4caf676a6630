package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licensehub/internal/application/subscription/dto"
	"licensehub/internal/application/testutil"
	"licensehub/internal/shared/errors"
)

func intPtr(n int) *int { return &n }

func TestCreateSubscriptionUseCase(t *testing.T) {
	store := testutil.NewStore(t)
	acme := store.Account("Acme")
	editor := store.Product("Editor")
	uc := NewCreateSubscriptionUseCase(store.Subscriptions, store.Accounts, store.Products, store.Log)

	expires := time.Now().AddDate(1, 0, 0)
	resp, err := uc.Execute(store.Ctx(), acme.ID(), dto.CreateSubscriptionRequest{
		ProductID:        editor.ID(),
		NumberOfLicenses: 5,
		ExpiresAt:        expires,
	})
	require.NoError(t, err)
	assert.Equal(t, "Editor", resp.ProductName)
	assert.Equal(t, int64(5), resp.AvailableLicenses)
	assert.False(t, resp.IssuedAt.IsZero())

	_, err = uc.Execute(store.Ctx(), acme.ID(), dto.CreateSubscriptionRequest{ProductID: editor.ID(), NumberOfLicenses: 1, ExpiresAt: expires})
	assert.True(t, errors.IsConflictError(err))

	_, err = uc.Execute(store.Ctx(), 999, dto.CreateSubscriptionRequest{ProductID: editor.ID(), ExpiresAt: expires})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = uc.Execute(store.Ctx(), acme.ID(), dto.CreateSubscriptionRequest{ProductID: 999, ExpiresAt: expires})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(store.Ctx(), acme.ID(), dto.CreateSubscriptionRequest{ProductID: editor.ID(), NumberOfLicenses: -1, ExpiresAt: expires})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(store.Ctx(), acme.ID(), dto.CreateSubscriptionRequest{ProductID: editor.ID()})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateSubscriptionUseCase_RejectsShrinkBelowUsage(t *testing.T) {
	store := testutil.NewStore(t)
	acme := store.Account("Acme")
	editor := store.Product("Editor")
	ada := store.User(acme.ID(), "Ada", "ada@acme.test")
	bob := store.User(acme.ID(), "Bob", "bob@acme.test")
	sub := store.Subscription(acme.ID(), editor.ID(), 3)
	store.Assign(acme.ID(), ada.ID(), editor.ID())
	store.Assign(acme.ID(), bob.ID(), editor.ID())

	uc := NewUpdateSubscriptionUseCase(store.Subscriptions, store.Assignments, store.TxMgr, store.Log)

	_, err := uc.Execute(store.Ctx(), sub.ID(), dto.UpdateSubscriptionRequest{NumberOfLicenses: intPtr(1)})
	assert.True(t, errors.IsConflictError(err))

	resp, err := uc.Execute(store.Ctx(), sub.ID(), dto.UpdateSubscriptionRequest{NumberOfLicenses: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.NumberOfLicenses)
	assert.Equal(t, int64(2), resp.UsedLicenses)
	assert.Equal(t, int64(0), resp.AvailableLicenses)

	expires := time.Now().AddDate(2, 0, 0).Truncate(time.Second)
	resp, err = uc.Execute(store.Ctx(), sub.ID(), dto.UpdateSubscriptionRequest{ExpiresAt: &expires})
	require.NoError(t, err)
	assert.True(t, expires.Equal(resp.ExpiresAt))
	assert.Equal(t, 2, resp.NumberOfLicenses)

	_, err = uc.Execute(store.Ctx(), 999, dto.UpdateSubscriptionRequest{NumberOfLicenses: intPtr(1)})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteSubscriptionUseCase_RemovesPoolAssignments(t *testing.T) {
	store := testutil.NewStore(t)
	acme := store.Account("Acme")
	editor := store.Product("Editor")
	debugger := store.Product("Debugger")
	ada := store.User(acme.ID(), "Ada", "ada@acme.test")
	sub := store.Subscription(acme.ID(), editor.ID(), 3)
	store.Subscription(acme.ID(), debugger.ID(), 3)
	store.Assign(acme.ID(), ada.ID(), editor.ID())
	store.Assign(acme.ID(), ada.ID(), debugger.ID())

	uc := NewDeleteSubscriptionUseCase(store.Subscriptions, store.Assignments, store.TxMgr, store.Log)
	require.NoError(t, uc.Execute(store.Ctx(), sub.ID()))

	assert.Equal(t, int64(0), store.Used(acme.ID(), editor.ID()))
	assert.Equal(t, int64(1), store.Used(acme.ID(), debugger.ID()))
	assert.True(t, errors.IsNotFoundError(uc.Execute(store.Ctx(), sub.ID())))
}

func TestListAndGetSubscriptionsUseCase(t *testing.T) {
	store := testutil.NewStore(t)
	acme := store.Account("Acme")
	editor := store.Product("Editor")
	debugger := store.Product("Debugger")
	ada := store.User(acme.ID(), "Ada", "ada@acme.test")
	sub := store.Subscription(acme.ID(), editor.ID(), 4)
	store.Subscription(acme.ID(), debugger.ID(), 1)
	store.Assign(acme.ID(), ada.ID(), editor.ID())

	list := NewListSubscriptionsUseCase(store.Subscriptions, store.Accounts, store.Assignments, store.Log)
	items, err := list.Execute(store.Ctx(), acme.ID())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Editor", items[0].ProductName)
	assert.Equal(t, int64(1), items[0].UsedLicenses)
	assert.Equal(t, int64(3), items[0].AvailableLicenses)
	assert.Equal(t, int64(0), items[1].UsedLicenses)

	_, err = list.Execute(store.Ctx(), 999)
	assert.True(t, errors.IsNotFoundError(err))

	get := NewGetSubscriptionUseCase(store.Subscriptions, store.Assignments, store.Log)
	resp, err := get.Execute(store.Ctx(), sub.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.UsedLicenses)
}
