package entity

import (
	"time"

	"github.com/google/uuid"
)

// CurrentSubscription is the per-user entitlement row. Exactly one exists per
// user (unique user_id). FeatureUsage is what remains, FeatureLimit is the
// active plan's allotment; usage keys are always a subset of limit keys.
type CurrentSubscription struct {
	Id                  uuid.UUID
	UserId              uuid.UUID
	SubscriptionId      uuid.UUID
	OrderSubscriptionId *uuid.UUID
	Type                SubscriptionType
	FeatureUsage        FeatureMap
	FeatureLimit        FeatureMap
	StartDate           time.Time
	EndDate             time.Time
	NextBillingDate     *time.Time // nil for LIFETIME
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
