package mappers

import (
	"fmt"

	"licensehub/internal/domain/licensing"
	"licensehub/internal/infrastructure/persistence/models"
	"licensehub/internal/shared/mapper"
)

type LicenseAssignmentMapper interface {
	ToEntity(model *models.LicenseAssignmentModel) (*licensing.Assignment, error)
	ToModel(entity *licensing.Assignment) *models.LicenseAssignmentModel
	// ToDetails expects User and Product to be preloaded.
	ToDetails(models []*models.LicenseAssignmentModel) ([]*licensing.AssignmentDetail, error)
}

type LicenseAssignmentMapperImpl struct{}

func NewLicenseAssignmentMapper() LicenseAssignmentMapper {
	return &LicenseAssignmentMapperImpl{}
}

func (m *LicenseAssignmentMapperImpl) ToEntity(model *models.LicenseAssignmentModel) (*licensing.Assignment, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := licensing.ReconstructAssignment(model.ID, model.AccountID, model.UserID, model.ProductID, model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct license assignment: %w", err)
	}
	return entity, nil
}

func (m *LicenseAssignmentMapperImpl) ToModel(entity *licensing.Assignment) *models.LicenseAssignmentModel {
	if entity == nil {
		return nil
	}
	return &models.LicenseAssignmentModel{
		ID:        entity.ID(),
		AccountID: entity.AccountID(),
		UserID:    entity.UserID(),
		ProductID: entity.ProductID(),
		CreatedAt: entity.CreatedAt(),
	}
}

func (m *LicenseAssignmentMapperImpl) ToDetails(items []*models.LicenseAssignmentModel) ([]*licensing.AssignmentDetail, error) {
	return mapper.MapSlicePtrWithID(items, m.toDetail, func(model *models.LicenseAssignmentModel) uint { return model.ID })
}

func (m *LicenseAssignmentMapperImpl) toDetail(model *models.LicenseAssignmentModel) (*licensing.AssignmentDetail, error) {
	entity, err := m.ToEntity(model)
	if err != nil {
		return nil, err
	}

	detail := &licensing.AssignmentDetail{Assignment: entity}
	if model.User != nil {
		detail.UserName = model.User.Name
		detail.UserEmail = model.User.Email
	}
	if model.Product != nil {
		detail.ProductName = model.Product.Name
	}
	return detail, nil
}
