package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"licensehub/internal/shared/config"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("secret", "licensehub", 15*time.Minute)

	token, err := svc.Generate("admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, int64(900), token.ExpiresIn)

	claims, err := svc.Verify(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "licensehub", claims.Issuer)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc := NewJWTService("secret", "licensehub", time.Minute)

	other := NewJWTService("other-secret", "licensehub", time.Minute)
	token, err := other.Generate("admin")
	require.NoError(t, err)
	_, err = svc.Verify(token.AccessToken)
	assert.Error(t, err)

	wrongIssuer := NewJWTService("secret", "someone-else", time.Minute)
	token, err = wrongIssuer.Generate("admin")
	require.NoError(t, err)
	_, err = svc.Verify(token.AccessToken)
	assert.Error(t, err)

	_, err = svc.Verify("not-a-token")
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)
	assert.NoError(t, hasher.Verify("s3cret", hash))
	assert.Error(t, hasher.Verify("wrong", hash))
	assert.Error(t, hasher.Verify("s3cret", "not-a-hash"))
}

func TestAdminAuthenticator_Login(t *testing.T) {
	hasher := NewBcryptPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("s3cret")
	require.NoError(t, err)

	jwtSvc := NewJWTService("secret", "licensehub", time.Minute)
	authn := NewAdminAuthenticator(config.AdminConfig{Username: "admin", PasswordHash: hash}, hasher, jwtSvc)

	token, err := authn.Login("admin", "s3cret")
	require.NoError(t, err)
	claims, err := jwtSvc.Verify(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)

	_, err = authn.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = authn.Login("root", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	unset := NewAdminAuthenticator(config.AdminConfig{}, hasher, jwtSvc)
	_, err = unset.Login("", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
