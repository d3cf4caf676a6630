package models

import (
	"time"

	"gorm.io/gorm"

	"licensehub/internal/shared/constants"
)

// SubscriptionModel is one license pool; (account_id, product_id) is unique.
type SubscriptionModel struct {
	ID               uint          `gorm:"primarykey"`
	AccountID        uint          `gorm:"not null;uniqueIndex:idx_subscriptions_account_product,priority:1"`
	Account          *AccountModel `gorm:"foreignKey:AccountID"`
	ProductID        uint          `gorm:"not null;uniqueIndex:idx_subscriptions_account_product,priority:2;index:idx_subscriptions_product_id"`
	Product          *ProductModel `gorm:"foreignKey:ProductID"`
	NumberOfLicenses int           `gorm:"not null;default:0"`
	IssuedAt         time.Time     `gorm:"not null"`
	ExpiresAt        time.Time     `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

func (s *SubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if s.IssuedAt.IsZero() {
		s.IssuedAt = time.Now()
	}
	return nil
}
