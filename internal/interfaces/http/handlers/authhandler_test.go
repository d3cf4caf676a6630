package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	storetest "licensehub/internal/application/testutil"
	"licensehub/internal/infrastructure/auth"
	"licensehub/internal/interfaces/http/handlers/testutil"
	"licensehub/internal/shared/config"
	"licensehub/internal/shared/logger"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *auth.JWTService) {
	t.Helper()
	hasher := auth.NewBcryptPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)

	jwtSvc := auth.NewJWTService("test-secret", "licensehub", 15*time.Minute)
	authenticator := auth.NewAdminAuthenticator(config.AdminConfig{Username: "admin", PasswordHash: hash}, hasher, jwtSvc)
	return NewAuthHandler(authenticator, logger.NewNopLogger()), jwtSvc
}

func TestAuthHandler_Token(t *testing.T) {
	handler, jwtSvc := newAuthHandler(t)

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/auth/token", TokenRequest{Username: "admin", Password: "s3cret-pass"})
	handler.Token(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var token TokenResponse
	require.NoError(t, json.Unmarshal(resp.Data, &token))
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(900), token.ExpiresIn)

	claims, err := jwtSvc.Verify(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
}

func TestAuthHandler_TokenRejected(t *testing.T) {
	handler, _ := newAuthHandler(t)

	tests := []struct {
		name string
		body interface{}
		want int
	}{
		{"wrong password", TokenRequest{Username: "admin", Password: "nope"}, http.StatusUnauthorized},
		{"unknown user", TokenRequest{Username: "root", Password: "s3cret-pass"}, http.StatusUnauthorized},
		{"missing password", map[string]string{"username": "admin"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testutil.NewTestContext(http.MethodPost, "/admin/auth/token", tt.body)
			handler.Token(c)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHealthHandler_Up(t *testing.T) {
	store := storetest.NewStore(t)
	handler := NewHealthHandler(store.DB, store.Log)

	c, w := testutil.NewTestContext(http.MethodGet, "/up", nil)
	handler.Up(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
