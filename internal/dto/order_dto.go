package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePaymentTokenRequest struct {
	SubscriptionId string `json:"subscription_id" validate:"required,uuid"`
}

type PaymentTokenResponse struct {
	OrderId     uuid.UUID `json:"order_id"`
	SnapToken   string    `json:"snap_token"`
	RedirectURL string    `json:"redirect_url"`
}

// MidtransWebhookRequest mirrors the gateway notification payload; extra
// fields ride along in Raw for auditing.
type MidtransWebhookRequest struct {
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	TransactionId     string `json:"transaction_id"`

	Raw map[string]interface{} `json:"-"`
}

type OrderHistoryResponse struct {
	Id                uuid.UUID  `json:"id"`
	SubscriptionId    uuid.UUID  `json:"subscription_id"`
	PlanName          string     `json:"plan_name,omitempty"`
	OrderPayment      *string    `json:"order_payment"`
	TransactionStatus string     `json:"transaction_status"`
	GrossAmount       int64      `json:"gross_amount"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           time.Time  `json:"end_date"`
	NextBillingDate   *time.Time `json:"next_billing_date"`
	CreatedAt         time.Time  `json:"created_at"`
}

type OrderTransactionResponse struct {
	Id                uuid.UUID `json:"id"`
	UserName          string    `json:"user_name"`
	UserEmail         string    `json:"user_email"`
	PlanName          string    `json:"plan_name"`
	GrossAmount       int64     `json:"gross_amount"`
	TransactionStatus string    `json:"transaction_status"`
	OrderPayment      *string   `json:"order_payment"`
	CreatedAt         time.Time `json:"created_at"`
}

type PaginatedResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}
