package models

import (
	"time"

	"licensehub/internal/shared/constants"
)

// LicenseAssignmentModel; the unique index on (account_id, product_id, user_id)
// backs the one-license-per-user-per-pool rule.
type LicenseAssignmentModel struct {
	ID        uint          `gorm:"primarykey"`
	AccountID uint          `gorm:"not null;uniqueIndex:idx_license_assignments_pool_user,priority:1"`
	Account   *AccountModel `gorm:"foreignKey:AccountID"`
	ProductID uint          `gorm:"not null;uniqueIndex:idx_license_assignments_pool_user,priority:2;index:idx_license_assignments_product_id"`
	Product   *ProductModel `gorm:"foreignKey:ProductID"`
	UserID    uint          `gorm:"not null;uniqueIndex:idx_license_assignments_pool_user,priority:3;index:idx_license_assignments_user_id"`
	User      *UserModel    `gorm:"foreignKey:UserID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LicenseAssignmentModel) TableName() string {
	return constants.TableLicenseAssignments
}
