package dto

import (
	"time"

	"licensehub/internal/domain/subscription"
)

type CreateSubscriptionRequest struct {
	ProductID        uint       `json:"product_id" validate:"required"`
	NumberOfLicenses int        `json:"number_of_licenses" validate:"gte=0"`
	IssuedAt         *time.Time `json:"issued_at,omitempty"`
	ExpiresAt        time.Time  `json:"expires_at" validate:"required"`
}

type UpdateSubscriptionRequest struct {
	NumberOfLicenses *int       `json:"number_of_licenses,omitempty" validate:"omitempty,gte=0"`
	IssuedAt         *time.Time `json:"issued_at,omitempty"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
}

type SubscriptionResponse struct {
	ID                uint      `json:"id"`
	AccountID         uint      `json:"account_id"`
	ProductID         uint      `json:"product_id"`
	ProductName       string    `json:"product_name,omitempty"`
	NumberOfLicenses  int       `json:"number_of_licenses"`
	UsedLicenses      int64     `json:"used_licenses"`
	AvailableLicenses int64     `json:"available_licenses"`
	IssuedAt          time.Time `json:"issued_at"`
	ExpiresAt         time.Time `json:"expires_at"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func ToSubscriptionResponse(s *subscription.Subscription, used int64) *SubscriptionResponse {
	if s == nil {
		return nil
	}
	resp := &SubscriptionResponse{
		ID:                s.ID(),
		AccountID:         s.AccountID(),
		ProductID:         s.ProductID(),
		NumberOfLicenses:  s.NumberOfLicenses(),
		UsedLicenses:      used,
		AvailableLicenses: s.AvailableLicenses(used),
		IssuedAt:          s.IssuedAt(),
		ExpiresAt:         s.ExpiresAt(),
		CreatedAt:         s.CreatedAt(),
		UpdatedAt:         s.UpdatedAt(),
	}
	if p := s.Product(); p != nil {
		resp.ProductName = p.Name
	}
	return resp
}
