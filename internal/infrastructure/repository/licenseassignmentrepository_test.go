package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licensehub/internal/domain/licensing"
	"licensehub/internal/shared/db"
)

func TestLicenseAssignmentRepository_CreateAndCount(t *testing.T) {
	f := newFixture(t)
	repo := NewLicenseAssignmentRepository(f.db, f.log)
	acme := f.account("Acme")
	editor := f.product("Editor")
	ada := f.user(acme.ID, "Ada", "ada@acme.test")
	f.subscription(acme.ID, editor.ID, 2)

	a, err := licensing.NewAssignment(acme.ID, ada.ID, editor.ID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(f.ctx(), a))
	require.NotZero(t, a.ID())

	again, err := licensing.NewAssignment(acme.ID, ada.ID, editor.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(f.ctx(), again), licensing.ErrDuplicateAssignment)

	used, err := repo.CountByPool(f.ctx(), acme.ID, editor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), used)

	exists, err := repo.Exists(f.ctx(), acme.ID, ada.ID, editor.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	usage, err := repo.CountByAccount(f.ctx(), acme.ID)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int64{editor.ID: 1}, usage)
}

func TestLicenseAssignmentRepository_ListByAccount(t *testing.T) {
	f := newFixture(t)
	repo := NewLicenseAssignmentRepository(f.db, f.log)
	acme := f.account("Acme")
	editor := f.product("Editor")
	ada := f.user(acme.ID, "Ada", "ada@acme.test")
	f.subscription(acme.ID, editor.ID, 2)
	f.assignment(acme.ID, ada.ID, editor.ID)

	details, err := repo.ListByAccount(f.ctx(), acme.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Ada", details[0].UserName)
	assert.Equal(t, "ada@acme.test", details[0].UserEmail)
	assert.Equal(t, "Editor", details[0].ProductName)
}

func TestLicenseAssignmentRepository_DeleteBatch(t *testing.T) {
	f := newFixture(t)
	repo := NewLicenseAssignmentRepository(f.db, f.log)
	acme := f.account("Acme")
	globex := f.account("Globex")
	editor := f.product("Editor")
	debugger := f.product("Debugger")
	ada := f.user(acme.ID, "Ada", "ada@acme.test")
	bob := f.user(acme.ID, "Bob", "bob@acme.test")
	hank := f.user(globex.ID, "Hank", "hank@globex.test")
	f.subscription(acme.ID, editor.ID, 5)
	f.subscription(acme.ID, debugger.ID, 5)
	f.subscription(globex.ID, editor.ID, 5)
	f.assignment(acme.ID, ada.ID, editor.ID)
	f.assignment(acme.ID, ada.ID, debugger.ID)
	f.assignment(acme.ID, bob.ID, editor.ID)
	f.assignment(globex.ID, hank.ID, editor.ID)

	removed, err := repo.DeleteBatch(f.ctx(), acme.ID, []uint{ada.ID}, nil)
	require.NoError(t, err)
	assert.Zero(t, removed)

	removed, err = repo.DeleteBatch(f.ctx(), acme.ID, []uint{ada.ID, bob.ID, hank.ID}, []uint{editor.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	used, err := repo.CountByPool(f.ctx(), globex.ID, editor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), used, "other accounts are untouched")

	used, err = repo.CountByPool(f.ctx(), acme.ID, debugger.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), used)
}

func TestLicenseAssignmentRepository_DeleteScopes(t *testing.T) {
	f := newFixture(t)
	repo := NewLicenseAssignmentRepository(f.db, f.log)
	acme := f.account("Acme")
	editor := f.product("Editor")
	debugger := f.product("Debugger")
	ada := f.user(acme.ID, "Ada", "ada@acme.test")
	bob := f.user(acme.ID, "Bob", "bob@acme.test")
	f.subscription(acme.ID, editor.ID, 5)
	f.subscription(acme.ID, debugger.ID, 5)
	single := f.assignment(acme.ID, ada.ID, editor.ID)
	f.assignment(acme.ID, ada.ID, debugger.ID)
	f.assignment(acme.ID, bob.ID, editor.ID)
	f.assignment(acme.ID, bob.ID, debugger.ID)

	require.NoError(t, repo.Delete(f.ctx(), single.ID))
	assert.ErrorIs(t, repo.Delete(f.ctx(), single.ID), licensing.ErrAssignmentNotFound)

	require.NoError(t, repo.DeleteByUser(f.ctx(), ada.ID))
	require.NoError(t, repo.DeleteByPool(f.ctx(), acme.ID, editor.ID))

	usage, err := repo.CountByAccount(f.ctx(), acme.ID)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int64{debugger.ID: 1}, usage)

	require.NoError(t, repo.DeleteByAccount(f.ctx(), acme.ID))
	usage, err = repo.CountByAccount(f.ctx(), acme.ID)
	require.NoError(t, err)
	assert.Empty(t, usage)
}

func TestLicensingDirectory(t *testing.T) {
	f := newFixture(t)
	dir := NewLicensingDirectory(f.db, f.log)
	acme := f.account("Acme")
	editor := f.product("Editor")
	ada := f.user(acme.ID, "Ada", "ada@acme.test")
	sub := f.subscription(acme.ID, editor.ID, 3)

	ok, err := dir.AccountExists(f.ctx(), acme.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = dir.AccountExists(f.ctx(), 999)
	require.NoError(t, err)
	assert.False(t, ok)

	u, err := dir.FindUser(f.ctx(), ada.ID)
	require.NoError(t, err)
	assert.Equal(t, &licensing.UserRef{ID: ada.ID, AccountID: acme.ID, Name: "Ada", Email: "ada@acme.test"}, u)

	p, err := dir.FindProduct(f.ctx(), 999)
	require.NoError(t, err)
	assert.Nil(t, p)

	txManager := db.NewTransactionManager(f.db)
	require.NoError(t, txManager.RunInTransaction(f.ctx(), func(ctx context.Context) error {
		pool, err := dir.FindPool(ctx, acme.ID, editor.ID)
		require.NoError(t, err)
		require.NotNil(t, pool)
		assert.Equal(t, sub.ID, pool.SubscriptionID)
		assert.Equal(t, 3, pool.NumberOfLicenses)
		return nil
	}))

	pool, err := dir.FindPool(f.ctx(), acme.ID, 999)
	require.NoError(t, err)
	assert.Nil(t, pool)
}
