package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licensehub/internal/application/licensing/dto"
	"licensehub/internal/application/licensing/usecases"
	storetest "licensehub/internal/application/testutil"
	"licensehub/internal/domain/licensing"
	"licensehub/internal/interfaces/http/handlers/testutil"
)

func newLicenseAssignmentHandler(store *storetest.Store) *LicenseAssignmentHandler {
	engine := licensing.NewRuleEngine(store.Directory, store.Assignments)
	return NewLicenseAssignmentHandler(
		usecases.NewListAssignmentsUseCase(store.Accounts, store.Assignments, store.Log),
		usecases.NewAssignmentFormUseCase(store.Accounts, store.Users, store.Subscriptions, store.Assignments, store.Log),
		usecases.NewCreateAssignmentsUseCase(store.Accounts, store.Assignments, engine, store.TxMgr, store.Log),
		usecases.NewDestroyAssignmentsUseCase(store.Accounts, store.Assignments, store.Log),
		usecases.NewDeleteAssignmentUseCase(store.Accounts, store.Assignments, store.Log),
		store.Log,
	)
}

func decodeBatch(t *testing.T, resp testutil.APIResponse) dto.BatchResult {
	t.Helper()
	var result dto.BatchResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	return result
}

func TestLicenseAssignmentHandler_CreateAllValid(t *testing.T) {
	store := storetest.NewStore(t)
	acme := store.Account("Acme")
	editor := store.Product("Editor")
	ada := store.User(acme.ID(), "Ada", "ada@acme.test")
	bob := store.User(acme.ID(), "Bob", "bob@acme.test")
	store.Subscription(acme.ID(), editor.ID(), 2)

	c, w := testutil.NewTestContext(http.MethodPost, "/", map[string]interface{}{
		"assignments": []map[string]interface{}{
			{"user_id": ada.ID(), "product_id": editor.ID()},
			{"user_id": fmt.Sprint(bob.ID()), "product_id": fmt.Sprint(editor.ID())},
		},
	})
	testutil.SetURLParam(c, "id", fmt.Sprint(acme.ID()))

	newLicenseAssignmentHandler(store).Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	result := decodeBatch(t, resp)
	assert.True(t, result.Success)
	assert.Len(t, result.Created, 2)
	assert.Equal(t, int64(2), store.Used(acme.ID(), editor.ID()))
}

func TestLicenseAssignmentHandler_CreatePartialFailureIs422(t *testing.T) {
	store := storetest.NewStore(t)
	acme := store.Account("Acme")
	editor := store.Product("Editor")
	profiler := store.Product("Profiler")
	ada := store.User(acme.ID(), "Ada", "ada@acme.test")
	store.Subscription(acme.ID(), editor.ID(), 2)

	body := fmt.Sprintf(`{"assignments": {
		"1": {"user_id": "%d", "product_id": "%d"},
		"0": {"user_id": "%d", "product_id": "%d"}
	}}`, ada.ID(), profiler.ID(), ada.ID(), editor.ID())
	c, w := testutil.NewRawTestContext(http.MethodPost, "/", body)
	testutil.SetURLParam(c, "id", fmt.Sprint(acme.ID()))

	newLicenseAssignmentHandler(store).Create(c)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "unprocessable_entity", resp.Error.Type)

	result := decodeBatch(t, resp)
	assert.Equal(t, []string{licensing.MsgNoSubscription}, result.Errors)
	require.Len(t, result.Created, 1)
	assert.Equal(t, editor.ID(), result.Created[0].ProductID)
}

func TestLicenseAssignmentHandler_CreateBlankIDsReportMissingReferences(t *testing.T) {
	store := storetest.NewStore(t)
	acme := store.Account("Acme")

	c, w := testutil.NewRawTestContext(http.MethodPost, "/", `{"assignments": [{"user_id": "", "product_id": null}]}`)
	testutil.SetURLParam(c, "id", fmt.Sprint(acme.ID()))

	newLicenseAssignmentHandler(store).Create(c)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	result := decodeBatch(t, resp)
	assert.Contains(t, result.Errors, licensing.MsgUserMissing)
	assert.Contains(t, result.Errors, licensing.MsgProductMissing)
	assert.Empty(t, result.Created)
}

func TestLicenseAssignmentHandler_CreateEmptyBatchIs422(t *testing.T) {
	store := storetest.NewStore(t)
	acme := store.Account("Acme")

	c, w := testutil.NewRawTestContext(http.MethodPost, "/", `{}`)
	testutil.SetURLParam(c, "id", fmt.Sprint(acme.ID()))

	newLicenseAssignmentHandler(store).Create(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLicenseAssignmentHandler_CreateUnknownAccountIs404(t *testing.T) {
	for name, body := range map[string]string{
		"non-empty batch": `{"assignments": [{"user_id": 1, "product_id": 1}]}`,
		"empty batch":     `{"assignments": []}`,
	} {
		t.Run(name, func(t *testing.T) {
			store := storetest.NewStore(t)

			c, w := testutil.NewRawTestContext(http.MethodPost, "/", body)
			testutil.SetURLParam(c, "id", "999")

			newLicenseAssignmentHandler(store).Create(c)

			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}

func TestLicenseAssignmentHandler_CreateMalformedIDRejectsOnlyItsRow(t *testing.T) {
	store := storetest.NewStore(t)
	acme := store.Account("Acme")
	editor := store.Product("Editor")
	ada := store.User(acme.ID(), "Ada", "ada@acme.test")
	store.Subscription(acme.ID(), editor.ID(), 2)

	body := fmt.Sprintf(`{"assignments": [
		{"user_id": "abc", "product_id": %d},
		{"user_id": %d, "product_id": "%d"}
	]}`, editor.ID(), ada.ID(), editor.ID())
	c, w := testutil.NewRawTestContext(http.MethodPost, "/", body)
	testutil.SetURLParam(c, "id", fmt.Sprint(acme.ID()))

	newLicenseAssignmentHandler(store).Create(c)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	result := decodeBatch(t, resp)
	assert.Equal(t, []string{licensing.MsgUserMissing}, result.Errors)
	require.Len(t, result.Created, 1)
	assert.Equal(t, ada.ID(), result.Created[0].UserID)
	assert.Equal(t, int64(1), store.Used(acme.ID(), editor.ID()))
}

// brokenCreateRepo fails every Create after the first.
type brokenCreateRepo struct {
	licensing.Repository
	calls int
}

func (r *brokenCreateRepo) Create(ctx context.Context, a *licensing.Assignment) error {
	r.calls++
	if r.calls > 1 {
		return fmt.Errorf("connection lost")
	}
	return r.Repository.Create(ctx, a)
}

func TestLicenseAssignmentHandler_CreateInterruptedBatchReportsCreated(t *testing.T) {
	store := storetest.NewStore(t)
	acme := store.Account("Acme")
	editor := store.Product("Editor")
	ada := store.User(acme.ID(), "Ada", "ada@acme.test")
	bob := store.User(acme.ID(), "Bob", "bob@acme.test")
	store.Subscription(acme.ID(), editor.ID(), 2)

	engine := licensing.NewRuleEngine(store.Directory, store.Assignments)
	repo := &brokenCreateRepo{Repository: store.Assignments}
	handler := NewLicenseAssignmentHandler(
		usecases.NewListAssignmentsUseCase(store.Accounts, store.Assignments, store.Log),
		usecases.NewAssignmentFormUseCase(store.Accounts, store.Users, store.Subscriptions, store.Assignments, store.Log),
		usecases.NewCreateAssignmentsUseCase(store.Accounts, repo, engine, store.TxMgr, store.Log),
		usecases.NewDestroyAssignmentsUseCase(store.Accounts, store.Assignments, store.Log),
		usecases.NewDeleteAssignmentUseCase(store.Accounts, store.Assignments, store.Log),
		store.Log,
	)

	c, w := testutil.NewTestContext(http.MethodPost, "/", map[string]interface{}{
		"assignments": []map[string]interface{}{
			{"user_id": ada.ID(), "product_id": editor.ID()},
			{"user_id": bob.ID(), "product_id": editor.ID()},
		},
	})
	testutil.SetURLParam(c, "id", fmt.Sprint(acme.ID()))

	handler.Create(c)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	result := decodeBatch(t, resp)
	require.Len(t, result.Created, 1)
	assert.Equal(t, ada.ID(), result.Created[0].UserID)
}

func TestLicenseAssignmentHandler_CreateInvalidAccountIDIs400(t *testing.T) {
	store := storetest.NewStore(t)

	c, w := testutil.NewRawTestContext(http.MethodPost, "/", `{"assignments": []}`)
	testutil.SetURLParam(c, "id", "invalid")

	newLicenseAssignmentHandler(store).Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLicenseAssignmentHandler_DestroyBatch(t *testing.T) {
	store := storetest.NewStore(t)
	acme := store.Account("Acme")
	globex := store.Account("Globex")
	editor := store.Product("Editor")
	debugger := store.Product("Debugger")
	ada := store.User(acme.ID(), "Ada", "ada@acme.test")
	bob := store.User(acme.ID(), "Bob", "bob@acme.test")
	gus := store.User(globex.ID(), "Gus", "gus@globex.test")
	for _, p := range []uint{editor.ID(), debugger.ID()} {
		store.Subscription(acme.ID(), p, 5)
		store.Subscription(globex.ID(), p, 5)
		store.Assign(acme.ID(), ada.ID(), p)
		store.Assign(acme.ID(), bob.ID(), p)
		store.Assign(globex.ID(), gus.ID(), p)
	}

	t.Run("body with mixed id encodings", func(t *testing.T) {
		body := fmt.Sprintf(`{"user_ids": ["%d", %d], "product_ids": "%d"}`, ada.ID(), bob.ID(), editor.ID())
		c, w := testutil.NewRawTestContext(http.MethodDelete, "/", body)
		testutil.SetURLParam(c, "id", fmt.Sprint(acme.ID()))

		newLicenseAssignmentHandler(store).DestroyBatch(c)

		require.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		var result dto.DestroyResult
		require.NoError(t, json.Unmarshal(resp.Data, &result))
		assert.Equal(t, int64(2), result.Deleted)
		assert.Equal(t, int64(0), store.Used(acme.ID(), editor.ID()))
	})

	t.Run("query parameters", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodDelete, "/", nil)
		testutil.SetURLParam(c, "id", fmt.Sprint(acme.ID()))
		testutil.SetQueryParams(c, url.Values{
			"user_ids[]":  {fmt.Sprint(ada.ID()), fmt.Sprint(bob.ID()), fmt.Sprint(gus.ID())},
			"product_ids": {fmt.Sprintf("%d,%d", editor.ID(), debugger.ID())},
		})

		newLicenseAssignmentHandler(store).DestroyBatch(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(0), store.Used(acme.ID(), debugger.ID()))
		assert.Equal(t, int64(1), store.Used(globex.ID(), debugger.ID()))
		assert.Equal(t, int64(1), store.Used(globex.ID(), editor.ID()))
	})

	t.Run("empty list removes nothing", func(t *testing.T) {
		c, w := testutil.NewRawTestContext(http.MethodDelete, "/", fmt.Sprintf(`{"user_ids": [], "product_ids": [%d]}`, editor.ID()))
		testutil.SetURLParam(c, "id", fmt.Sprint(globex.ID()))

		newLicenseAssignmentHandler(store).DestroyBatch(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(1), store.Used(globex.ID(), editor.ID()))
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		c, w := testutil.NewTestContext(http.MethodDelete, "/", nil)
		testutil.SetURLParam(c, "id", fmt.Sprint(globex.ID()))
		testutil.SetQueryParams(c, url.Values{"user_ids": {"abc"}, "product_ids": {"1"}})

		newLicenseAssignmentHandler(store).DestroyBatch(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLicenseAssignmentHandler_DestroySingle(t *testing.T) {
	store := storetest.NewStore(t)
	acme := store.Account("Acme")
	editor := store.Product("Editor")
	ada := store.User(acme.ID(), "Ada", "ada@acme.test")
	store.Subscription(acme.ID(), editor.ID(), 1)
	assignment := store.Assign(acme.ID(), ada.ID(), editor.ID())
	handler := newLicenseAssignmentHandler(store)

	c, w := testutil.NewTestContext(http.MethodDelete, "/", nil)
	testutil.SetURLParam(c, "id", fmt.Sprint(acme.ID()))
	testutil.SetURLParam(c, "assignment_id", fmt.Sprint(assignment.ID()))
	handler.DestroySingle(c)
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, int64(0), store.Used(acme.ID(), editor.ID()))

	c, w = testutil.NewTestContext(http.MethodDelete, "/", nil)
	testutil.SetURLParam(c, "id", fmt.Sprint(acme.ID()))
	testutil.SetURLParam(c, "assignment_id", fmt.Sprint(assignment.ID()))
	handler.DestroySingle(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLicenseAssignmentHandler_DestroySingleChecksAccount(t *testing.T) {
	store := storetest.NewStore(t)
	acme := store.Account("Acme")
	globex := store.Account("Globex")
	editor := store.Product("Editor")
	ada := store.User(acme.ID(), "Ada", "ada@acme.test")
	store.Subscription(acme.ID(), editor.ID(), 1)
	assignment := store.Assign(acme.ID(), ada.ID(), editor.ID())
	handler := newLicenseAssignmentHandler(store)

	for name, accountID := range map[string]string{
		"unknown account": "999",
		"other account":   fmt.Sprint(globex.ID()),
	} {
		t.Run(name, func(t *testing.T) {
			c, w := testutil.NewTestContext(http.MethodDelete, "/", nil)
			testutil.SetURLParam(c, "id", accountID)
			testutil.SetURLParam(c, "assignment_id", fmt.Sprint(assignment.ID()))
			handler.DestroySingle(c)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, int64(1), store.Used(acme.ID(), editor.ID()))
		})
	}
}

func TestLicenseAssignmentHandler_Index(t *testing.T) {
	store := storetest.NewStore(t)
	acme := store.Account("Acme")
	editor := store.Product("Editor")
	ada := store.User(acme.ID(), "Ada", "ada@acme.test")
	store.User(acme.ID(), "Bob", "bob@acme.test")
	store.Subscription(acme.ID(), editor.ID(), 3)
	store.Assign(acme.ID(), ada.ID(), editor.ID())

	c, w := testutil.NewTestContext(http.MethodGet, "/", nil)
	testutil.SetURLParam(c, "id", fmt.Sprint(acme.ID()))

	newLicenseAssignmentHandler(store).Index(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var index AssignmentsIndexResponse
	require.NoError(t, json.Unmarshal(resp.Data, &index))
	assert.Len(t, index.Assignments, 1)
	assert.Len(t, index.Users, 2)
	require.Len(t, index.Subscriptions, 1)
	assert.Equal(t, int64(1), index.Subscriptions[0].UsedLicenses)
	assert.Equal(t, int64(2), index.Subscriptions[0].AvailableLicenses)

	c, w = testutil.NewTestContext(http.MethodGet, "/", nil)
	testutil.SetURLParam(c, "id", "999")
	newLicenseAssignmentHandler(store).Index(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
