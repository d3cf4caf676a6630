package mappers

import (
	"fmt"

	"licensehub/internal/domain/user"
	"licensehub/internal/infrastructure/persistence/models"
	"licensehub/internal/shared/mapper"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := user.ReconstructUser(model.ID, model.AccountID, model.Name, model.Email, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user: %w", err)
	}
	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:        entity.ID(),
		AccountID: entity.AccountID(),
		Name:      entity.Name(),
		Email:     entity.Email(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToEntities(items []*models.UserModel) ([]*user.User, error) {
	return mapper.MapSlicePtrWithID(items, m.ToEntity, func(model *models.UserModel) uint { return model.ID })
}
