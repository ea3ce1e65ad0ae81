package service

import (
	"context"
	"time"

	"testinesia-be/internal/dto"
	"testinesia-be/internal/entity"
	"testinesia-be/internal/pkg/logger"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/repository/specification"
	"testinesia-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const publicPlansCacheKey = "public_plans"

type ISubscriptionService interface {
	Create(ctx context.Context, adminId uuid.UUID, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, id uuid.UUID) (*dto.SubscriptionResponse, error)
	FindAll(ctx context.Context) ([]*dto.SubscriptionResponse, error)
	// FindAllPublic serves the pricing page; results are cached in-process
	// and invalidated on every catalog mutation.
	FindAllPublic(ctx context.Context) ([]*dto.PublicPlanResponse, error)
}

type subscriptionService struct {
	uowFactory unitofwork.RepositoryFactory
	planCache  *gocache.Cache
	logger     logger.ILogger
}

func NewSubscriptionService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ISubscriptionService {
	return &subscriptionService{
		uowFactory: uowFactory,
		planCache:  gocache.New(10*time.Minute, 15*time.Minute),
		logger:     log,
	}
}

func (s *subscriptionService) toResponse(sub *entity.Subscription) *dto.SubscriptionResponse {
	return &dto.SubscriptionResponse{
		Id:          sub.Id,
		Name:        sub.Name,
		Description: sub.Description,
		Features:    sub.Features,
		Price:       sub.Price,
		Position:    sub.Position,
		PlanType:    string(sub.PlanType),
		Type:        string(sub.Type),
		CreatedAt:   sub.CreatedAt,
	}
}

// toPublicPlanResponse trims a plan down to the pricing-page view; the tier
// stays in so the page can mark the free plan.
func toPublicPlanResponse(sub *entity.Subscription) *dto.PublicPlanResponse {
	return &dto.PublicPlanResponse{
		Id:          sub.Id,
		Name:        sub.Name,
		Description: sub.Description,
		Features:    sub.Features,
		Price:       sub.Price,
		Position:    sub.Position,
		PlanType:    string(sub.PlanType),
		Type:        string(sub.Type),
	}
}

func (s *subscriptionService) Create(ctx context.Context, adminId uuid.UUID, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if err := req.Features.Validate(); err != nil {
		return nil, serverutils.NewBadRequest(err.Error())
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	sub := &entity.Subscription{
		Id:          uuid.New(),
		AdminId:     adminId,
		Name:        req.Name,
		Description: req.Description,
		Features:    req.Features.Clone(),
		Price:       req.Price,
		Position:    req.Position,
		PlanType:    entity.PlanType(req.PlanType),
		Type:        entity.SubscriptionType(req.Type),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uow.SubscriptionRepository().Create(ctx, sub); err != nil {
		return nil, err
	}

	s.planCache.Delete(publicPlansCacheKey)
	s.logger.Info("subscription", "plan created", map[string]interface{}{"plan_id": sub.Id, "name": sub.Name})

	return s.toResponse(sub), nil
}

func (s *subscriptionService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, serverutils.NewNotFound("subscription plan not found")
	}

	if err := req.Features.Validate(); err != nil {
		return nil, serverutils.NewBadRequest(err.Error())
	}

	sub.Name = req.Name
	sub.Description = req.Description
	sub.Features = req.Features.Clone()
	sub.Price = req.Price
	sub.Position = req.Position
	sub.PlanType = entity.PlanType(req.PlanType)
	sub.Type = entity.SubscriptionType(req.Type)
	sub.UpdatedAt = time.Now()

	if err := uow.SubscriptionRepository().Update(ctx, sub); err != nil {
		return nil, err
	}

	s.planCache.Delete(publicPlansCacheKey)

	return s.toResponse(sub), nil
}

func (s *subscriptionService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if sub == nil {
		return serverutils.NewNotFound("subscription plan not found")
	}
	if sub.Type == entity.SubscriptionTypeFree {
		return serverutils.NewBadRequest("the free plan cannot be deleted")
	}

	if err := uow.SubscriptionRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.planCache.Delete(publicPlansCacheKey)
	s.logger.Warn("subscription", "plan deleted", map[string]interface{}{"plan_id": id})

	return nil
}

func (s *subscriptionService) FindOne(ctx context.Context, id uuid.UUID) (*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	sub, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, serverutils.NewNotFound("subscription plan not found")
	}

	return s.toResponse(sub), nil
}

func (s *subscriptionService) FindAll(ctx context.Context) ([]*dto.SubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAll(ctx, specification.OrderBy{Field: "position"})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		responses = append(responses, s.toResponse(sub))
	}
	return responses, nil
}

func (s *subscriptionService) FindAllPublic(ctx context.Context) ([]*dto.PublicPlanResponse, error) {
	if cached, found := s.planCache.Get(publicPlansCacheKey); found {
		return cached.([]*dto.PublicPlanResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	subs, err := uow.SubscriptionRepository().FindAll(ctx, specification.OrderBy{Field: "position"})
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.PublicPlanResponse, 0, len(subs))
	for _, sub := range subs {
		responses = append(responses, toPublicPlanResponse(sub))
	}

	s.planCache.Set(publicPlansCacheKey, responses, gocache.DefaultExpiration)

	return responses, nil
}
