package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licensehub/internal/application/account/dto"
	"licensehub/internal/application/testutil"
	"licensehub/internal/shared/errors"
)

func TestCreateAccountUseCase(t *testing.T) {
	store := testutil.NewStore(t)
	uc := NewCreateAccountUseCase(store.Accounts, store.Log)

	resp, err := uc.Execute(store.Ctx(), dto.CreateAccountRequest{Name: "  Acme  "})
	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, "Acme", resp.Name)

	_, err = uc.Execute(store.Ctx(), dto.CreateAccountRequest{Name: ""})
	assert.True(t, errors.IsValidationError(err))
}

func TestGetAndUpdateAccountUseCase(t *testing.T) {
	store := testutil.NewStore(t)
	acme := store.Account("Acme")

	get := NewGetAccountUseCase(store.Accounts, store.Log)
	resp, err := get.Execute(store.Ctx(), acme.ID())
	require.NoError(t, err)
	assert.Equal(t, "Acme", resp.Name)

	_, err = get.Execute(store.Ctx(), 999)
	assert.True(t, errors.IsNotFoundError(err))

	update := NewUpdateAccountUseCase(store.Accounts, store.Log)
	resp, err = update.Execute(store.Ctx(), acme.ID(), dto.UpdateAccountRequest{Name: "Acme Corp"})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", resp.Name)

	_, err = update.Execute(store.Ctx(), 999, dto.UpdateAccountRequest{Name: "Ghost"})
	assert.True(t, errors.IsNotFoundError(err))
}

func TestListAccountsUseCase(t *testing.T) {
	store := testutil.NewStore(t)
	store.Account("Globex")
	store.Account("Acme")
	store.Account("Initech")

	uc := NewListAccountsUseCase(store.Accounts, store.Log)
	resp, err := uc.Execute(store.Ctx(), dto.ListAccountsRequest{PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Total)
	assert.Equal(t, 2, resp.TotalPages)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Acme", resp.Items[0].Name)
}

func TestDeleteAccountUseCase_Cascades(t *testing.T) {
	store := testutil.NewStore(t)
	acme := store.Account("Acme")
	globex := store.Account("Globex")
	editor := store.Product("Editor")
	ada := store.User(acme.ID(), "Ada", "ada@acme.test")
	hank := store.User(globex.ID(), "Hank", "hank@globex.test")
	store.Subscription(acme.ID(), editor.ID(), 3)
	store.Subscription(globex.ID(), editor.ID(), 3)
	store.Assign(acme.ID(), ada.ID(), editor.ID())
	store.Assign(globex.ID(), hank.ID(), editor.ID())

	uc := NewDeleteAccountUseCase(store.Accounts, store.Users, store.Subscriptions, store.Assignments, store.TxMgr, store.Log)
	require.NoError(t, uc.Execute(store.Ctx(), acme.ID()))

	gone, err := store.Accounts.GetByID(store.Ctx(), acme.ID())
	require.NoError(t, err)
	assert.Nil(t, gone)

	users, err := store.Users.ListByAccount(store.Ctx(), acme.ID())
	require.NoError(t, err)
	assert.Empty(t, users)

	subs, err := store.Subscriptions.ListByAccount(store.Ctx(), acme.ID())
	require.NoError(t, err)
	assert.Empty(t, subs)

	assert.Equal(t, int64(0), store.Used(acme.ID(), editor.ID()))
	assert.Equal(t, int64(1), store.Used(globex.ID(), editor.ID()))

	assert.True(t, errors.IsNotFoundError(uc.Execute(store.Ctx(), acme.ID())))
}
