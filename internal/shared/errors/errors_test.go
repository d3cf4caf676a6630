package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("bad"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("missing"), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("dup"), ErrorTypeConflict, http.StatusConflict},
		{"unauthorized", NewUnauthorizedError("no"), ErrorTypeUnauthorized, http.StatusUnauthorized},
		{"internal", NewInternalError("boom"), ErrorTypeInternal, http.StatusInternalServerError},
		{"bad request", NewBadRequestError("bad"), ErrorTypeBadRequest, http.StatusBadRequest},
		{"unprocessable", NewUnprocessableError("partial"), ErrorTypeUnprocessable, http.StatusUnprocessableEntity},
		{"rate limited", NewRateLimitedError("slow down"), ErrorTypeRateLimited, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Empty(t, tt.err.Details)
		})
	}
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "not_found: account", NewNotFoundError("account").Error())
	assert.Equal(t, "not_found: account (42)", NewNotFoundError("account", "42").Error())
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("failed to load: %w", NewConflictError("email taken"))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsConflictError(wrapped))
	assert.False(t, IsNotFoundError(wrapped))
	assert.Nil(t, GetAppError(errors.New("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(errors.New("Error 1062 (23000): Duplicate entry 'a@b.c' for key 'users.idx_users_email'")))
	assert.True(t, IsDuplicateError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email"`)))
	assert.True(t, IsDuplicateError(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, IsDuplicateError(errors.New("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}

func TestIsForeignKeyError(t *testing.T) {
	assert.True(t, IsForeignKeyError(errors.New("FOREIGN KEY constraint failed")))
	assert.True(t, IsForeignKeyError(errors.New("Cannot delete or update a parent row: a foreign key constraint fails")))
	assert.False(t, IsForeignKeyError(errors.New("syntax error")))
}
