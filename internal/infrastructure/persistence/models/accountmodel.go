package models

import (
	"time"

	"licensehub/internal/shared/constants"
)

// AccountModel is the persistence shape of account.Account
type AccountModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"not null;size:255"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AccountModel) TableName() string {
	return constants.TableAccounts
}
