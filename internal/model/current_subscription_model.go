package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CurrentSubscription struct {
	Id                  uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId              uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	SubscriptionId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderSubscriptionId *uuid.UUID `gorm:"type:uuid;index"`
	Type                string     `gorm:"type:subscription_type;not null;default:'free'"`
	FeatureUsage        datatypes.JSON `gorm:"type:jsonb;not null"`
	FeatureLimit        datatypes.JSON `gorm:"type:jsonb;not null"`
	StartDate           time.Time      `gorm:"not null"`
	EndDate             time.Time      `gorm:"not null"`
	NextBillingDate     *time.Time
	IsActive            bool      `gorm:"default:true"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (CurrentSubscription) TableName() string {
	return "current_subscriptions"
}
