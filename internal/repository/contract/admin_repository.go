package contract

import (
	"context"

	"testinesia-be/internal/entity"
	"testinesia-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.Admin) error
	Update(ctx context.Context, admin *entity.Admin) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Admin, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Admin, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateAccessToken(ctx context.Context, adminId uuid.UUID, token *string) error
}
