package contract

import (
	"context"

	"testinesia-be/internal/entity"
	"testinesia-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Project, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Project, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Current-project pointer (one per user)
	UpsertCurrentProject(ctx context.Context, current *entity.CurrentProject) error
	FindCurrentProject(ctx context.Context, userId uuid.UUID) (*entity.CurrentProject, error)
}
