package service

import (
	"context"
	"encoding/json"
	"time"

	"testinesia-be/internal/dto"
	"testinesia-be/internal/entity"
	"testinesia-be/internal/pkg/logger"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/repository/specification"
	"testinesia-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const publicShowcaseCacheTTL = 5 * time.Minute

type IShowcaseService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateShowcaseRequest) (*dto.ShowcaseResponse, error)
	Update(ctx context.Context, userId uuid.UUID, slug string, req *dto.UpdateShowcaseRequest) (*dto.ShowcaseResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, slug string) error
	FindAll(ctx context.Context, userId uuid.UUID) ([]*dto.ShowcaseResponse, error)
	// GetPublic serves the public page; active showcases only, cached.
	GetPublic(ctx context.Context, slug string) (*dto.PublicShowcaseResponse, error)
}

type showcaseService struct {
	uowFactory     unitofwork.RepositoryFactory
	currentSubSvc  ICurrentSubscriptionService
	testimonialSvc ITestimonialService
	redisClient    *redis.Client
	logger         logger.ILogger
}

func NewShowcaseService(
	uowFactory unitofwork.RepositoryFactory,
	currentSubSvc ICurrentSubscriptionService,
	testimonialSvc ITestimonialService,
	redisClient *redis.Client,
	log logger.ILogger,
) IShowcaseService {
	return &showcaseService{
		uowFactory:     uowFactory,
		currentSubSvc:  currentSubSvc,
		testimonialSvc: testimonialSvc,
		redisClient:    redisClient,
		logger:         log,
	}
}

func publicShowcaseCacheKey(slug string) string {
	return "showcase:public:" + slug
}

func toShowcaseResponse(sc *entity.Showcase) *dto.ShowcaseResponse {
	return &dto.ShowcaseResponse{
		Id:           sc.Id,
		ProjectId:    sc.ProjectId,
		Title:        sc.Title,
		Slug:         sc.Slug,
		Logo:         sc.Logo,
		PrimaryColor: sc.PrimaryColor,
		Content:      sc.Content,
		HeroContent:  sc.HeroContent,
		Navigation:   sc.Navigation,
		Status:       string(sc.Status),
		CreatedAt:    sc.CreatedAt,
	}
}

// findOwnedBySlug resolves a showcase through the owning project.
func (s *showcaseService) findOwnedBySlug(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, slug string) (*entity.Showcase, error) {
	showcase, err := uow.ShowcaseRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if showcase == nil {
		return nil, serverutils.NewNotFound("showcase not found")
	}

	project, err := uow.ProjectRepository().FindOne(ctx, specification.ByID{ID: showcase.ProjectId})
	if err != nil {
		return nil, err
	}
	if project == nil || project.UserId != userId {
		return nil, serverutils.NewNotFound("showcase not found")
	}
	return showcase, nil
}

func (s *showcaseService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateShowcaseRequest) (*dto.ShowcaseResponse, error) {
	if err := serverutils.ValidateSlug(req.Slug); err != nil {
		return nil, serverutils.NewBadRequest("slug may only contain lowercase letters, digits and dashes")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	current, err := uow.ProjectRepository().FindCurrentProject(ctx, userId)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, serverutils.NewBadRequest("select a project before creating a showcase")
	}

	// Slugs are global, they form public URLs.
	existing, err := uow.ShowcaseRepository().FindOne(ctx, specification.BySlug{Slug: req.Slug})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, serverutils.NewConflict("slug is already taken")
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := s.currentSubSvc.Consume(ctx, uow, userId, entity.FeatureShowcasePage, -1); err != nil {
		return nil, err
	}

	now := time.Now()
	showcase := &entity.Showcase{
		Id:           uuid.New(),
		ProjectId:    current.ProjectId,
		Title:        req.Title,
		Slug:         req.Slug,
		PrimaryColor: "#6C5CE7",
		Status:       entity.ShowcaseStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uow.ShowcaseRepository().Create(ctx, showcase); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("showcase", "showcase created", map[string]interface{}{"showcase_id": showcase.Id, "slug": showcase.Slug})

	return toShowcaseResponse(showcase), nil
}

func (s *showcaseService) Update(ctx context.Context, userId uuid.UUID, slug string, req *dto.UpdateShowcaseRequest) (*dto.ShowcaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	showcase, err := s.findOwnedBySlug(ctx, uow, userId, slug)
	if err != nil {
		return nil, err
	}

	showcase.Title = req.Title
	showcase.Logo = req.Logo
	showcase.PrimaryColor = req.PrimaryColor
	showcase.Content = req.Content
	showcase.HeroContent = req.HeroContent
	showcase.Navigation = req.Navigation
	if req.Status != "" {
		showcase.Status = entity.ShowcaseStatus(req.Status)
	}
	showcase.UpdatedAt = time.Now()

	if err := uow.ShowcaseRepository().Update(ctx, showcase); err != nil {
		return nil, err
	}

	s.invalidatePublicCache(ctx, slug)

	return toShowcaseResponse(showcase), nil
}

func (s *showcaseService) Delete(ctx context.Context, userId uuid.UUID, slug string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	showcase, err := s.findOwnedBySlug(ctx, uow, userId, slug)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ShowcaseRepository().Delete(ctx, showcase.Id); err != nil {
		return err
	}

	if err := s.currentSubSvc.Consume(ctx, uow, userId, entity.FeatureShowcasePage, 1); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.invalidatePublicCache(ctx, slug)

	s.logger.Info("showcase", "showcase deleted", map[string]interface{}{"showcase_id": showcase.Id, "slug": slug})
	return nil
}

func (s *showcaseService) FindAll(ctx context.Context, userId uuid.UUID) ([]*dto.ShowcaseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	current, err := uow.ProjectRepository().FindCurrentProject(ctx, userId)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return []*dto.ShowcaseResponse{}, nil
	}

	showcases, err := uow.ShowcaseRepository().FindAll(ctx,
		specification.ProjectOwnedBy{ProjectID: current.ProjectId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ShowcaseResponse, 0, len(showcases))
	for _, sc := range showcases {
		responses = append(responses, toShowcaseResponse(sc))
	}
	return responses, nil
}

func (s *showcaseService) GetPublic(ctx context.Context, slug string) (*dto.PublicShowcaseResponse, error) {
	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, publicShowcaseCacheKey(slug)).Result(); err == nil {
			var resp dto.PublicShowcaseResponse
			if jsonErr := json.Unmarshal([]byte(cached), &resp); jsonErr == nil {
				return &resp, nil
			}
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	showcase, err := uow.ShowcaseRepository().FindOne(ctx, specification.BySlug{Slug: slug})
	if err != nil {
		return nil, err
	}
	if showcase == nil || showcase.Status != entity.ShowcaseStatusActive {
		return nil, serverutils.NewNotFound("showcase not found")
	}

	approved, err := s.testimonialSvc.FindApproved(ctx, showcase.ProjectId)
	if err != nil {
		return nil, err
	}

	testimonials := make([]dto.TestimonialResponse, 0, len(approved))
	for _, t := range approved {
		testimonials = append(testimonials, *t)
	}

	resp := &dto.PublicShowcaseResponse{
		Title:        showcase.Title,
		Slug:         showcase.Slug,
		Logo:         showcase.Logo,
		PrimaryColor: showcase.PrimaryColor,
		Content:      showcase.Content,
		HeroContent:  showcase.HeroContent,
		Navigation:   showcase.Navigation,
		Testimonials: testimonials,
	}

	if s.redisClient != nil {
		if payload, jsonErr := json.Marshal(resp); jsonErr == nil {
			if err := s.redisClient.Set(ctx, publicShowcaseCacheKey(slug), payload, publicShowcaseCacheTTL).Err(); err != nil {
				s.logger.Warn("showcase", "failed to cache public showcase", map[string]interface{}{
					"slug":  slug,
					"error": err.Error(),
				})
			}
		}
	}

	return resp, nil
}

func (s *showcaseService) invalidatePublicCache(ctx context.Context, slug string) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, publicShowcaseCacheKey(slug)).Err(); err != nil {
		s.logger.Warn("showcase", "failed to invalidate showcase cache", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
	}
}
