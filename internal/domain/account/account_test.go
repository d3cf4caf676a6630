package account

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	a, err := NewAccount("  TechCorp Solutions ")
	require.NoError(t, err)
	assert.Equal(t, "TechCorp Solutions", a.Name())
	assert.Zero(t, a.ID())
	assert.False(t, a.CreatedAt().IsZero())

	_, err = NewAccount("   ")
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = NewAccount(strings.Repeat("x", 256))
	assert.ErrorIs(t, err, ErrNameTooLong)
}

func TestAccount_SetID(t *testing.T) {
	a, err := NewAccount("Digital Innovations Ltd")
	require.NoError(t, err)

	assert.ErrorIs(t, a.SetID(0), ErrInvalidID)
	require.NoError(t, a.SetID(4))
	assert.ErrorIs(t, a.SetID(5), ErrIDAlreadySet)
	assert.Equal(t, uint(4), a.ID())
}

func TestAccount_Rename(t *testing.T) {
	created := time.Now().Add(-time.Hour)
	a, err := ReconstructAccount(1, "Global Systems Inc", created, created)
	require.NoError(t, err)

	require.NoError(t, a.Rename("Global Systems Inc"))
	assert.Equal(t, created, a.UpdatedAt())

	require.NoError(t, a.Rename("Global Systems GmbH"))
	assert.Equal(t, "Global Systems GmbH", a.Name())
	assert.True(t, a.UpdatedAt().After(created))

	assert.ErrorIs(t, a.Rename(""), ErrNameRequired)
}

func TestReconstructAccount_RequiresID(t *testing.T) {
	_, err := ReconstructAccount(0, "x", time.Now(), time.Now())
	assert.ErrorIs(t, err, ErrInvalidID)
}
