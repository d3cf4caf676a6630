package models

import (
	"time"

	"licensehub/internal/shared/constants"
)

// UserModel stores email already case-folded by the domain layer, so the
// plain unique index is case-insensitive in effect.
type UserModel struct {
	ID        uint          `gorm:"primarykey"`
	AccountID uint          `gorm:"not null;index:idx_users_account_id"`
	Account   *AccountModel `gorm:"foreignKey:AccountID"`
	Name      string        `gorm:"not null;size:255"`
	Email     string        `gorm:"not null;size:255;uniqueIndex:idx_users_email"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
