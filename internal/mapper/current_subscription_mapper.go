package mapper

import (
	"testinesia-be/internal/entity"
	"testinesia-be/internal/model"
)

type CurrentSubscriptionMapper struct{}

func NewCurrentSubscriptionMapper() *CurrentSubscriptionMapper {
	return &CurrentSubscriptionMapper{}
}

func (m *CurrentSubscriptionMapper) ToEntity(c *model.CurrentSubscription) *entity.CurrentSubscription {
	if c == nil {
		return nil
	}
	usage := entity.FeatureMap{}
	limit := entity.FeatureMap{}
	fromJSONColumn(c.FeatureUsage, &usage)
	fromJSONColumn(c.FeatureLimit, &limit)
	return &entity.CurrentSubscription{
		Id:                  c.Id,
		UserId:              c.UserId,
		SubscriptionId:      c.SubscriptionId,
		OrderSubscriptionId: c.OrderSubscriptionId,
		Type:                entity.SubscriptionType(c.Type),
		FeatureUsage:        usage,
		FeatureLimit:        limit,
		StartDate:           c.StartDate,
		EndDate:             c.EndDate,
		NextBillingDate:     c.NextBillingDate,
		IsActive:            c.IsActive,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (m *CurrentSubscriptionMapper) ToModel(c *entity.CurrentSubscription) *model.CurrentSubscription {
	if c == nil {
		return nil
	}
	return &model.CurrentSubscription{
		Id:                  c.Id,
		UserId:              c.UserId,
		SubscriptionId:      c.SubscriptionId,
		OrderSubscriptionId: c.OrderSubscriptionId,
		Type:                string(c.Type),
		FeatureUsage:        toJSONColumn(c.FeatureUsage),
		FeatureLimit:        toJSONColumn(c.FeatureLimit),
		StartDate:           c.StartDate,
		EndDate:             c.EndDate,
		NextBillingDate:     c.NextBillingDate,
		IsActive:            c.IsActive,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func (m *CurrentSubscriptionMapper) ToEntities(subs []*model.CurrentSubscription) []*entity.CurrentSubscription {
	entities := make([]*entity.CurrentSubscription, len(subs))
	for i, c := range subs {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
