package product

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewProduct(t *testing.T) {
	p, err := NewProduct(" Office Suite Pro ", "  Word processing  ")
	require.NoError(t, err)
	assert.Equal(t, "Office Suite Pro", p.Name())
	assert.Equal(t, "Word processing", p.Description())

	_, err = NewProduct("", "desc")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestProduct_Update(t *testing.T) {
	p, err := ReconstructProduct(3, "Security Shield", "old", time.Now(), time.Now())
	require.NoError(t, err)

	require.NoError(t, p.Update(nil, strPtr("new")))
	assert.Equal(t, "Security Shield", p.Name())
	assert.Equal(t, "new", p.Description())

	require.NoError(t, p.Update(strPtr("Security Shield X"), nil))
	assert.Equal(t, "Security Shield X", p.Name())

	assert.ErrorIs(t, p.Update(strPtr(" "), nil), ErrNameRequired)
}
