package mapper

import (
	"testinesia-be/internal/entity"
	"testinesia-be/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	features := entity.FeatureMap{}
	fromJSONColumn(s.Features, &features)
	return &entity.Subscription{
		Id:          s.Id,
		AdminId:     s.AdminId,
		Name:        s.Name,
		Description: s.Description,
		Features:    features,
		Price:       s.Price,
		Position:    s.Position,
		PlanType:    entity.PlanType(s.PlanType),
		Type:        entity.SubscriptionType(s.Type),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	return &model.Subscription{
		Id:          s.Id,
		AdminId:     s.AdminId,
		Name:        s.Name,
		Description: s.Description,
		Features:    toJSONColumn(s.Features),
		Price:       s.Price,
		Position:    s.Position,
		PlanType:    string(s.PlanType),
		Type:        string(s.Type),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToEntities(subs []*model.Subscription) []*entity.Subscription {
	entities := make([]*entity.Subscription, len(subs))
	for i, s := range subs {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
