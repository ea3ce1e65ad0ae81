package entity

import (
	"time"

	"github.com/google/uuid"
)

type TransactionStatus string

const (
	TransactionStatusPending  TransactionStatus = "PENDING"
	TransactionStatusSuccess  TransactionStatus = "SUCCESS"
	TransactionStatusFailed   TransactionStatus = "FAILED"
	TransactionStatusActive   TransactionStatus = "ACTIVE"
	TransactionStatusInactive TransactionStatus = "INACTIVE"
)

type OrderSubscription struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	SubscriptionId    uuid.UUID
	OrderPayment      *string // gateway order id
	TransactionStatus TransactionStatus
	PaymentBase       map[string]interface{} // raw gateway payload
	GrossAmount       int64
	StartDate         time.Time
	EndDate           time.Time
	NextBillingDate   *time.Time
	IsAutoRenew       bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderTransaction is the admin listing view joined with user and plan.
type OrderTransaction struct {
	Id                uuid.UUID
	UserId            uuid.UUID
	UserName          string
	UserEmail         string
	PlanName          string
	GrossAmount       int64
	TransactionStatus TransactionStatus
	OrderPayment      *string
	CreatedAt         time.Time
}
