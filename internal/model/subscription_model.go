package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Subscription struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AdminId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Features    datatypes.JSON `gorm:"type:jsonb;not null"`
	Price       int64          `gorm:"not null;default:0"`
	Position    int            `gorm:"default:0"`
	PlanType    string         `gorm:"type:plan_type;not null"`
	Type        string         `gorm:"type:subscription_type;not null;default:'free'"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
