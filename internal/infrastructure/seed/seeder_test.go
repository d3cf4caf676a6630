package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountUsecases "licensehub/internal/application/account/usecases"
	licensingUsecases "licensehub/internal/application/licensing/usecases"
	productDto "licensehub/internal/application/product/dto"
	productUsecases "licensehub/internal/application/product/usecases"
	subscriptionUsecases "licensehub/internal/application/subscription/usecases"
	"licensehub/internal/application/testutil"
	userUsecases "licensehub/internal/application/user/usecases"
	"licensehub/internal/domain/account"
	"licensehub/internal/domain/licensing"
	"licensehub/internal/domain/product"
)

func newSeeder(store *testutil.Store) *Seeder {
	converter := productDto.NewProductConverter(nil)
	engine := licensing.NewRuleEngine(store.Directory, store.Assignments)
	return NewSeeder(UseCases{
		CreateProduct:      productUsecases.NewCreateProductUseCase(store.Products, converter, store.Log),
		ListProducts:       productUsecases.NewListProductsUseCase(store.Products, converter, store.Log),
		CreateAccount:      accountUsecases.NewCreateAccountUseCase(store.Accounts, store.Log),
		ListAccounts:       accountUsecases.NewListAccountsUseCase(store.Accounts, store.Log),
		CreateUser:         userUsecases.NewCreateUserUseCase(store.Users, store.Accounts, store.Log),
		ListUsers:          userUsecases.NewListUsersUseCase(store.Users, store.Log),
		CreateSubscription: subscriptionUsecases.NewCreateSubscriptionUseCase(store.Subscriptions, store.Accounts, store.Products, store.Log),
		CreateAssignments:  licensingUsecases.NewCreateAssignmentsUseCase(store.Accounts, store.Assignments, engine, store.TxMgr, store.Log),
		AssignmentForm: licensingUsecases.NewAssignmentFormUseCase(
			store.Accounts, store.Users, store.Subscriptions, store.Assignments, store.Log),
	}, store.Log)
}

const sample = `
assign_ratio: 1
products:
  - name: Editor
    description: "**fast** editing"
  - name: Debugger
accounts:
  - name: Acme
    users:
      - {name: Ada, email: ada@acme.test}
      - {name: Bob, email: bob@acme.test}
      - {name: Cy, email: cy@acme.test}
    subscriptions:
      - {product: Editor, licenses: 2}
      - {product: Debugger, licenses: 5, expires_in_months: 6}
`

func TestSeeder_Run(t *testing.T) {
	store := testutil.NewStore(t)
	data, err := Parse([]byte(sample))
	require.NoError(t, err)

	summary, err := newSeeder(store).Run(store.Ctx(), data)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Products)
	assert.Equal(t, 1, summary.Accounts)
	assert.Equal(t, 3, summary.Users)
	assert.Equal(t, 2, summary.Subscriptions)
	assert.Equal(t, 5, summary.Assignments)
	assert.Empty(t, summary.Skipped)

	accounts, _, err := store.Accounts.List(store.Ctx(), account.ListFilter{Name: "Acme", Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	products, _, err := store.Products.List(store.Ctx(), product.ListFilter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, products, 2)

	byName := map[string]uint{}
	for _, p := range products {
		byName[p.Name()] = p.ID()
	}
	assert.Equal(t, int64(2), store.Used(accounts[0].ID(), byName["Editor"]))
	assert.Equal(t, int64(3), store.Used(accounts[0].ID(), byName["Debugger"]))
}

func TestSeeder_RunTwiceOnlyFillsGaps(t *testing.T) {
	store := testutil.NewStore(t)
	data, err := Parse([]byte(sample))
	require.NoError(t, err)
	seeder := newSeeder(store)

	_, err = seeder.Run(store.Ctx(), data)
	require.NoError(t, err)

	summary, err := seeder.Run(store.Ctx(), data)
	require.NoError(t, err)

	assert.Zero(t, summary.Products)
	assert.Zero(t, summary.Accounts)
	assert.Zero(t, summary.Users)
	assert.Zero(t, summary.Subscriptions)
	assert.Zero(t, summary.Assignments)
	assert.NotEmpty(t, summary.Skipped)
}

func TestAssignmentRequests(t *testing.T) {
	users := []uint{10, 11, 12}

	assert.Len(t, assignmentRequests(users, 1, 10, 0.6), 3)
	assert.Len(t, assignmentRequests(users, 1, 3, 0.6), 1)
	assert.Empty(t, assignmentRequests(users, 1, 1, 0.6))

	reqs := assignmentRequests(users, 7, 2, 1)
	require.Len(t, reqs, 2)
	assert.Equal(t, uint(10), reqs[0].UserID)
	assert.Equal(t, uint(7), reqs[1].ProductID)
}

func TestParse(t *testing.T) {
	data, err := Default()
	require.NoError(t, err)
	assert.Len(t, data.Products, 5)
	assert.Len(t, data.Accounts, 3)
	assert.InDelta(t, 0.6, data.AssignRatio, 0.0001)

	_, err = Parse([]byte("accounts:\n  - name: A\n    subscriptions:\n      - {product: Ghost, licenses: 1}\n"))
	assert.ErrorContains(t, err, "unknown product")

	_, err = Parse([]byte("assign_ratio: 2\n"))
	assert.ErrorContains(t, err, "assign_ratio")

	_, err = Load("/nonexistent/seed.yaml")
	assert.Error(t, err)
}
