package dto

import (
	"time"

	"licensehub/internal/domain/licensing"
	"licensehub/internal/domain/subscription"
	"licensehub/internal/domain/user"
)

// AssignmentRequest asks for one license of ProductID for UserID. Zero ids
// stand for absent values and are reported as missing references.
type AssignmentRequest struct {
	UserID    uint `json:"user_id"`
	ProductID uint `json:"product_id"`
}

type AssignmentResponse struct {
	ID          uint      `json:"id"`
	AccountID   uint      `json:"account_id"`
	UserID      uint      `json:"user_id"`
	ProductID   uint      `json:"product_id"`
	UserName    string    `json:"user_name,omitempty"`
	UserEmail   string    `json:"user_email,omitempty"`
	ProductName string    `json:"product_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// BatchResult reports a best-effort batch: every candidate is attempted and
// Errors holds the distinct violation messages of the ones that failed.
type BatchResult struct {
	Success bool                  `json:"success"`
	Errors  []string              `json:"errors"`
	Created []*AssignmentResponse `json:"created"`
}

type DestroyResult struct {
	Deleted int64 `json:"deleted"`
}

type UserOption struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PoolSummary struct {
	SubscriptionID    uint      `json:"subscription_id"`
	ProductID         uint      `json:"product_id"`
	ProductName       string    `json:"product_name"`
	NumberOfLicenses  int       `json:"number_of_licenses"`
	UsedLicenses      int64     `json:"used_licenses"`
	AvailableLicenses int64     `json:"available_licenses"`
	ExpiresAt         time.Time `json:"expires_at"`
}

// AssignmentFormResponse carries what an operator needs to pick assignments
// for one account.
type AssignmentFormResponse struct {
	AccountID     uint           `json:"account_id"`
	Users         []*UserOption  `json:"users"`
	Subscriptions []*PoolSummary `json:"subscriptions"`
}

func ToAssignmentResponse(a *licensing.Assignment) *AssignmentResponse {
	if a == nil {
		return nil
	}
	return &AssignmentResponse{
		ID:        a.ID(),
		AccountID: a.AccountID(),
		UserID:    a.UserID(),
		ProductID: a.ProductID(),
		CreatedAt: a.CreatedAt(),
	}
}

func ToAssignmentDetailResponse(d *licensing.AssignmentDetail) *AssignmentResponse {
	if d == nil {
		return nil
	}
	resp := ToAssignmentResponse(d.Assignment)
	resp.UserName = d.UserName
	resp.UserEmail = d.UserEmail
	resp.ProductName = d.ProductName
	return resp
}

func ToUserOption(u *user.User) *UserOption {
	return &UserOption{ID: u.ID(), Name: u.Name(), Email: u.Email()}
}

func ToPoolSummary(s *subscription.Subscription, used int64) *PoolSummary {
	summary := &PoolSummary{
		SubscriptionID:    s.ID(),
		ProductID:         s.ProductID(),
		NumberOfLicenses:  s.NumberOfLicenses(),
		UsedLicenses:      used,
		AvailableLicenses: s.AvailableLicenses(used),
		ExpiresAt:         s.ExpiresAt(),
	}
	if p := s.Product(); p != nil {
		summary.ProductName = p.Name
	}
	return summary
}
