package entity

import (
	"time"

	"github.com/google/uuid"
)

type PlanType string
type SubscriptionType string

const (
	PlanTypeMonthly  PlanType = "MONTHLY"
	PlanTypeYearly   PlanType = "YEARLY"
	PlanTypeLifetime PlanType = "LIFETIME"

	SubscriptionTypeFree    SubscriptionType = "free"
	SubscriptionTypePremium SubscriptionType = "premium"
)

// Subscription is a purchasable plan in the catalog. Features is the
// allotment granted on purchase; Position drives pricing-page ordering.
type Subscription struct {
	Id          uuid.UUID
	AdminId     uuid.UUID
	Name        string
	Description string
	Features    FeatureMap
	Price       int64 // IDR, no decimals
	Position    int
	PlanType    PlanType
	Type        SubscriptionType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
