package contract

import (
	"context"

	"testinesia-be/internal/entity"
	"testinesia-be/internal/repository/specification"

	"github.com/google/uuid"
)

type OrderSubscriptionRepository interface {
	Create(ctx context.Context, order *entity.OrderSubscription) error
	Update(ctx context.Context, order *entity.OrderSubscription) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.OrderSubscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.OrderSubscription, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// FindTransactions is the admin listing joined with users and plans.
	FindTransactions(ctx context.Context, status string, limit, offset int) ([]*entity.OrderTransaction, int64, error)
	// SumSuccessfulAmount totals revenue of settled orders for the dashboard.
	SumSuccessfulAmount(ctx context.Context) (int64, error)
}
