package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=superadmin admin inputer"`
}

type UpdateAdminRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=superadmin admin inputer"`
}

// GrantSubscriptionRequest activates a plan for a user without payment.
type GrantSubscriptionRequest struct {
	UserId         string `json:"user_id" validate:"required,uuid"`
	SubscriptionId string `json:"subscription_id" validate:"required,uuid"`
}

type AdminResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type DashboardStatsResponse struct {
	TotalRevenue       int64 `json:"total_revenue"`
	PremiumSubscribers int64 `json:"premium_subscribers"`
	TotalUsers         int64 `json:"total_users"`
	TotalOrders        int64 `json:"total_orders"`
}
