package service

import (
	"context"
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"testinesia-be/internal/dto"
	"testinesia-be/internal/entity"
	"testinesia-be/internal/pkg/logger"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/repository/specification"
	"testinesia-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// randomSlug draws n characters from the lowercase alphanumeric alphabet.
func randomSlug(n int) string {
	var b strings.Builder
	b.Grow(n)
	max := big.NewInt(int64(len(slugAlphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			b.WriteByte(slugAlphabet[0])
			continue
		}
		b.WriteByte(slugAlphabet[idx.Int64()])
	}
	return b.String()
}

// slugify turns a title into a url handle, suffixed for uniqueness.
func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return randomSlug(8)
	}
	return slug + "-" + randomSlug(4)
}

type IProjectService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	Update(ctx context.Context, userId, projectId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	Delete(ctx context.Context, userId, projectId uuid.UUID) error
	FindOne(ctx context.Context, userId, projectId uuid.UUID) (*dto.ProjectResponse, error)
	FindAll(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectResponse, error)
	SetCurrent(ctx context.Context, userId uuid.UUID, req *dto.SetCurrentProjectRequest) error
	GetCurrent(ctx context.Context, userId uuid.UUID) (*dto.ProjectResponse, error)
}

type projectService struct {
	uowFactory    unitofwork.RepositoryFactory
	currentSubSvc ICurrentSubscriptionService
	logger        logger.ILogger
}

func NewProjectService(uowFactory unitofwork.RepositoryFactory, currentSubSvc ICurrentSubscriptionService, log logger.ILogger) IProjectService {
	return &projectService{
		uowFactory:    uowFactory,
		currentSubSvc: currentSubSvc,
		logger:        log,
	}
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		Id:          p.Id,
		Title:       p.Title,
		Description: p.Description,
		Slug:        p.Slug,
		Metadata:    p.Metadata,
		CreatedAt:   p.CreatedAt,
	}
}

// findOwned loads a project and enforces ownership in one step.
func (s *projectService) findOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId, projectId uuid.UUID) (*entity.Project, error) {
	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: projectId})
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserId != userId {
		return nil, serverutils.NewNotFound("project not found")
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Quota and project row move together.
	if err := s.currentSubSvc.Consume(ctx, uow, userId, entity.FeatureProject, -1); err != nil {
		return nil, err
	}

	now := time.Now()
	project := &entity.Project{
		Id:          uuid.New(),
		UserId:      userId,
		Title:       req.Title,
		Description: req.Description,
		Slug:        slugify(req.Title),
		Metadata:    req.Metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.ProjectRepository().Create(ctx, project); err != nil {
		return nil, err
	}

	// First project becomes the working project automatically.
	existing, err := uow.ProjectRepository().FindCurrentProject(ctx, userId)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		current := &entity.CurrentProject{
			Id:        uuid.New(),
			UserId:    userId,
			ProjectId: project.Id,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uow.ProjectRepository().UpsertCurrentProject(ctx, current); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("project", "project created", map[string]interface{}{"project_id": project.Id, "user_id": userId})

	return toProjectResponse(project), nil
}

func (s *projectService) Update(ctx context.Context, userId, projectId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.findOwned(ctx, uow, userId, projectId)
	if err != nil {
		return nil, err
	}

	project.Title = req.Title
	project.Description = req.Description
	project.Metadata = req.Metadata
	project.UpdatedAt = time.Now()

	if err := uow.ProjectRepository().Update(ctx, project); err != nil {
		return nil, err
	}

	return toProjectResponse(project), nil
}

func (s *projectService) Delete(ctx context.Context, userId, projectId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwned(ctx, uow, userId, projectId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ProjectRepository().Delete(ctx, projectId); err != nil {
		return err
	}

	// Deleting the resource hands the quota back.
	if err := s.currentSubSvc.Consume(ctx, uow, userId, entity.FeatureProject, 1); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info("project", "project deleted", map[string]interface{}{"project_id": projectId, "user_id": userId})
	return nil
}

func (s *projectService) FindOne(ctx context.Context, userId, projectId uuid.UUID) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.findOwned(ctx, uow, userId, projectId)
	if err != nil {
		return nil, err
	}

	return toProjectResponse(project), nil
}

func (s *projectService) FindAll(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projects, err := uow.ProjectRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, toProjectResponse(p))
	}
	return responses, nil
}

func (s *projectService) SetCurrent(ctx context.Context, userId uuid.UUID, req *dto.SetCurrentProjectRequest) error {
	projectId, err := uuid.Parse(req.ProjectId)
	if err != nil {
		return serverutils.NewBadRequest("invalid project id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwned(ctx, uow, userId, projectId); err != nil {
		return err
	}

	now := time.Now()
	return uow.ProjectRepository().UpsertCurrentProject(ctx, &entity.CurrentProject{
		Id:        uuid.New(),
		UserId:    userId,
		ProjectId: projectId,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *projectService) GetCurrent(ctx context.Context, userId uuid.UUID) (*dto.ProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	current, err := uow.ProjectRepository().FindCurrentProject(ctx, userId)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, serverutils.NewNotFound("no current project selected")
	}

	project, err := s.findOwned(ctx, uow, userId, current.ProjectId)
	if err != nil {
		return nil, err
	}

	return toProjectResponse(project), nil
}
