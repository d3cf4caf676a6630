package auth

import (
	"crypto/subtle"
	"errors"

	"licensehub/internal/shared/config"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AdminAuthenticator checks the single configured admin operator and issues tokens.
type AdminAuthenticator struct {
	username     string
	passwordHash string
	hasher       *BcryptPasswordHasher
	jwt          *JWTService
}

func NewAdminAuthenticator(cfg config.AdminConfig, hasher *BcryptPasswordHasher, jwt *JWTService) *AdminAuthenticator {
	return &AdminAuthenticator{
		username:     cfg.Username,
		passwordHash: cfg.PasswordHash,
		hasher:       hasher,
		jwt:          jwt,
	}
}

func (a *AdminAuthenticator) Login(username, password string) (*Token, error) {
	if a.username == "" || a.passwordHash == "" {
		return nil, ErrInvalidCredentials
	}

	nameOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	// bcrypt runs even for an unknown username
	passErr := a.hasher.Verify(password, a.passwordHash)
	if !nameOK || passErr != nil {
		return nil, ErrInvalidCredentials
	}

	return a.jwt.Generate(a.username)
}
