package mappers

import (
	"fmt"

	"licensehub/internal/domain/account"
	"licensehub/internal/infrastructure/persistence/models"
	"licensehub/internal/shared/mapper"
)

// AccountMapper converts between account.Account and models.AccountModel
type AccountMapper interface {
	ToEntity(model *models.AccountModel) (*account.Account, error)
	ToModel(entity *account.Account) *models.AccountModel
	ToEntities(models []*models.AccountModel) ([]*account.Account, error)
}

type AccountMapperImpl struct{}

func NewAccountMapper() AccountMapper {
	return &AccountMapperImpl{}
}

func (m *AccountMapperImpl) ToEntity(model *models.AccountModel) (*account.Account, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := account.ReconstructAccount(model.ID, model.Name, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct account: %w", err)
	}
	return entity, nil
}

func (m *AccountMapperImpl) ToModel(entity *account.Account) *models.AccountModel {
	if entity == nil {
		return nil
	}
	return &models.AccountModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *AccountMapperImpl) ToEntities(items []*models.AccountModel) ([]*account.Account, error) {
	return mapper.MapSlicePtrWithID(items, m.ToEntity, func(model *models.AccountModel) uint { return model.ID })
}
