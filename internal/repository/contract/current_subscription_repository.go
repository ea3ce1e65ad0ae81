package contract

import (
	"context"

	"testinesia-be/internal/entity"
	"testinesia-be/internal/repository/specification"
)

type CurrentSubscriptionRepository interface {
	// Upsert writes the entitlement keyed on user_id (one row per user).
	Upsert(ctx context.Context, sub *entity.CurrentSubscription) error
	Update(ctx context.Context, sub *entity.CurrentSubscription) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CurrentSubscription, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CurrentSubscription, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
