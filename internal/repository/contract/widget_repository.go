package contract

import (
	"context"

	"testinesia-be/internal/entity"
	"testinesia-be/internal/repository/specification"

	"github.com/google/uuid"
)

type WidgetRepository interface {
	Create(ctx context.Context, widget *entity.Widget) error
	Update(ctx context.Context, widget *entity.Widget) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Widget, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Widget, error)
}
