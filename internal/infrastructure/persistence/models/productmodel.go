package models

import (
	"time"

	"licensehub/internal/shared/constants"
)

type ProductModel struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"not null;size:255"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductModel) TableName() string {
	return constants.TableProducts
}
