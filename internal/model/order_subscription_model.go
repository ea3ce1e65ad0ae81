package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type OrderSubscription struct {
	Id                uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId            uuid.UUID         `gorm:"type:uuid;not null;index"`
	SubscriptionId    uuid.UUID         `gorm:"type:uuid;not null;index"`
	OrderPayment      *string           `gorm:"type:varchar(255);index"`
	TransactionStatus string            `gorm:"type:transaction_status;not null;default:'PENDING'"`
	PaymentBase       datatypes.JSONMap `gorm:"type:jsonb"`
	GrossAmount       int64             `gorm:"not null;default:0"`
	StartDate         time.Time         `gorm:"not null"`
	EndDate           time.Time         `gorm:"not null"`
	NextBillingDate   *time.Time
	IsAutoRenew       bool      `gorm:"default:false"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (OrderSubscription) TableName() string {
	return "order_subscriptions"
}
