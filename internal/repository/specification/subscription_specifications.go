package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserOwnedBy filters rows by owning user
type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ByOrderPayment filters orders by the gateway order id
type ByOrderPayment struct {
	OrderPayment string
}

func (s ByOrderPayment) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("order_payment = ?", s.OrderPayment)
}

// ByTransactionStatus filters orders by lifecycle status
type ByTransactionStatus struct {
	Status string
}

func (s ByTransactionStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("transaction_status = ?", s.Status)
}

// ActiveOnly filters entitlements still switched on
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// BySubscriptionType filters entitlements by free/premium tier
type BySubscriptionType struct {
	Type string
}

func (s BySubscriptionType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", s.Type)
}

// NextBillingBefore selects rows whose billing checkpoint already passed
type NextBillingBefore struct {
	At time.Time
}

func (s NextBillingBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("next_billing_date IS NOT NULL AND next_billing_date < ?", s.At)
}

// NextBillingBetween selects rows approaching their billing checkpoint
type NextBillingBetween struct {
	From time.Time
	To   time.Time
}

func (s NextBillingBetween) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("next_billing_date IS NOT NULL AND next_billing_date BETWEEN ? AND ?", s.From, s.To)
}
