package mappers

import (
	"fmt"

	"licensehub/internal/domain/subscription"
	"licensehub/internal/infrastructure/persistence/models"
	"licensehub/internal/shared/mapper"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error)
	ToModel(entity *subscription.Subscription) *models.SubscriptionModel
	ToEntities(models []*models.SubscriptionModel) ([]*subscription.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

// ToEntity carries the preloaded product, if any, into the aggregate.
func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*subscription.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	var productRef *subscription.ProductRef
	if model.Product != nil {
		productRef = &subscription.ProductRef{ID: model.Product.ID, Name: model.Product.Name}
	}

	entity, err := subscription.ReconstructSubscription(
		model.ID,
		model.AccountID,
		model.ProductID,
		model.NumberOfLicenses,
		model.IssuedAt,
		model.ExpiresAt,
		model.CreatedAt,
		model.UpdatedAt,
		productRef,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription: %w", err)
	}
	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *subscription.Subscription) *models.SubscriptionModel {
	if entity == nil {
		return nil
	}
	return &models.SubscriptionModel{
		ID:               entity.ID(),
		AccountID:        entity.AccountID(),
		ProductID:        entity.ProductID(),
		NumberOfLicenses: entity.NumberOfLicenses(),
		IssuedAt:         entity.IssuedAt(),
		ExpiresAt:        entity.ExpiresAt(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}
}

func (m *SubscriptionMapperImpl) ToEntities(items []*models.SubscriptionModel) ([]*subscription.Subscription, error) {
	return mapper.MapSlicePtrWithID(items, m.ToEntity, func(model *models.SubscriptionModel) uint { return model.ID })
}
