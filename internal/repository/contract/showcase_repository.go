package contract

import (
	"context"

	"testinesia-be/internal/entity"
	"testinesia-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ShowcaseRepository interface {
	Create(ctx context.Context, showcase *entity.Showcase) error
	Update(ctx context.Context, showcase *entity.Showcase) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Showcase, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Showcase, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
