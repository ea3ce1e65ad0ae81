package mapper

import (
	"testinesia-be/internal/entity"
	"testinesia-be/internal/model"
)

type OrderSubscriptionMapper struct{}

func NewOrderSubscriptionMapper() *OrderSubscriptionMapper {
	return &OrderSubscriptionMapper{}
}

func (m *OrderSubscriptionMapper) ToEntity(o *model.OrderSubscription) *entity.OrderSubscription {
	if o == nil {
		return nil
	}
	return &entity.OrderSubscription{
		Id:                o.Id,
		UserId:            o.UserId,
		SubscriptionId:    o.SubscriptionId,
		OrderPayment:      o.OrderPayment,
		TransactionStatus: entity.TransactionStatus(o.TransactionStatus),
		PaymentBase:       o.PaymentBase,
		GrossAmount:       o.GrossAmount,
		StartDate:         o.StartDate,
		EndDate:           o.EndDate,
		NextBillingDate:   o.NextBillingDate,
		IsAutoRenew:       o.IsAutoRenew,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func (m *OrderSubscriptionMapper) ToModel(o *entity.OrderSubscription) *model.OrderSubscription {
	if o == nil {
		return nil
	}
	return &model.OrderSubscription{
		Id:                o.Id,
		UserId:            o.UserId,
		SubscriptionId:    o.SubscriptionId,
		OrderPayment:      o.OrderPayment,
		TransactionStatus: string(o.TransactionStatus),
		PaymentBase:       o.PaymentBase,
		GrossAmount:       o.GrossAmount,
		StartDate:         o.StartDate,
		EndDate:           o.EndDate,
		NextBillingDate:   o.NextBillingDate,
		IsAutoRenew:       o.IsAutoRenew,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func (m *OrderSubscriptionMapper) ToEntities(orders []*model.OrderSubscription) []*entity.OrderSubscription {
	entities := make([]*entity.OrderSubscription, len(orders))
	for i, o := range orders {
		entities[i] = m.ToEntity(o)
	}
	return entities
}
