package dto

import (
	"time"

	"licensehub/internal/domain/account"
)

type CreateAccountRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type UpdateAccountRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type ListAccountsRequest struct {
	Name     string `form:"name"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type AccountResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListAccountsResponse struct {
	Items      []*AccountResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

func ToAccountResponse(a *account.Account) *AccountResponse {
	if a == nil {
		return nil
	}
	return &AccountResponse{
		ID:        a.ID(),
		Name:      a.Name(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
}
