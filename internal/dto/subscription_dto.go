package dto

import (
	"time"

	"testinesia-be/internal/entity"

	"github.com/google/uuid"
)

type CreateSubscriptionRequest struct {
	Name        string            `json:"name" validate:"required,min=2,max=100"`
	Description string            `json:"description"`
	Features    entity.FeatureMap `json:"features" validate:"required"`
	Price       int64             `json:"price" validate:"gte=0"`
	Position    int               `json:"position"`
	PlanType    string            `json:"plan_type" validate:"required,oneof=MONTHLY YEARLY LIFETIME"`
	Type        string            `json:"type" validate:"required,oneof=free premium"`
}

type UpdateSubscriptionRequest struct {
	Name        string            `json:"name" validate:"required,min=2,max=100"`
	Description string            `json:"description"`
	Features    entity.FeatureMap `json:"features" validate:"required"`
	Price       int64             `json:"price" validate:"gte=0"`
	Position    int               `json:"position"`
	PlanType    string            `json:"plan_type" validate:"required,oneof=MONTHLY YEARLY LIFETIME"`
	Type        string            `json:"type" validate:"required,oneof=free premium"`
}

type SubscriptionResponse struct {
	Id          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Features    entity.FeatureMap `json:"features"`
	Price       int64             `json:"price"`
	Position    int               `json:"position"`
	PlanType    string            `json:"plan_type"`
	Type        string            `json:"type"`
	CreatedAt   time.Time         `json:"created_at"`
}

// PublicPlanResponse is the trimmed pricing-page view.
type PublicPlanResponse struct {
	Id          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Features    entity.FeatureMap `json:"features"`
	Price       int64             `json:"price"`
	PlanType    string            `json:"plan_type"`
	Type        string            `json:"type"`
	Position    int               `json:"position"`
}

type CurrentSubscriptionResponse struct {
	Id              uuid.UUID         `json:"id"`
	SubscriptionId  uuid.UUID         `json:"subscription_id"`
	Type            string            `json:"type"`
	FeatureUsage    entity.FeatureMap `json:"feature_usage"`
	FeatureLimit    entity.FeatureMap `json:"feature_limit"`
	StartDate       time.Time         `json:"start_date"`
	EndDate         time.Time         `json:"end_date"`
	NextBillingDate *time.Time        `json:"next_billing_date"`
	IsActive        bool              `json:"is_active"`
}
