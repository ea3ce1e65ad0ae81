package service

import (
	"context"
	"errors"
	"time"

	"testinesia-be/internal/dto"
	"testinesia-be/internal/entity"
	"testinesia-be/internal/pkg/logger"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/repository/specification"
	"testinesia-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICurrentSubscriptionService interface {
	GetCurrent(ctx context.Context, userId uuid.UUID) (*dto.CurrentSubscriptionResponse, error)
	// SetDefault puts the user on the catalog free tier. Idempotent; used at
	// registration and as a reset.
	SetDefault(ctx context.Context, userId uuid.UUID) error
	// ApplyPlan merges a purchased plan into the entitlement. At most once
	// per order: a repeat call with the same orderId is a no-op.
	ApplyPlan(ctx context.Context, userId, planId, orderId uuid.UUID) error
	// Consume runs inside the caller's unit of work so quota movement commits
	// or rolls back together with the resource write.
	Consume(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, key entity.FeatureKey, delta int64) error
	IsPremium(ctx context.Context, userId uuid.UUID) bool
	// CheckExpiration reports active entitlements whose billing checkpoint
	// passed. Reporting only; nothing is deactivated here.
	CheckExpiration(ctx context.Context) ([]*entity.CurrentSubscription, error)
}

type currentSubscriptionService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewCurrentSubscriptionService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ICurrentSubscriptionService {
	return &currentSubscriptionService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// computeBillingDates derives the entitlement window from the plan type.
// The next billing checkpoint sits 7 days before the window closes so the
// reminder sweep has room; LIFETIME has no checkpoint at all.
func computeBillingDates(planType entity.PlanType, start time.Time) (end time.Time, nextBilling *time.Time) {
	switch planType {
	case entity.PlanTypeMonthly:
		end = start.AddDate(0, 1, 0)
	case entity.PlanTypeYearly:
		end = start.AddDate(1, 0, 0)
	case entity.PlanTypeLifetime:
		end = start.AddDate(100, 0, 0)
		return end, nil
	default:
		end = start.AddDate(0, 1, 0)
	}
	nb := end.AddDate(0, 0, -7)
	return end, &nb
}

func (s *currentSubscriptionService) GetCurrent(ctx context.Context, userId uuid.UUID) (*dto.CurrentSubscriptionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	current, err := uow.CurrentSubscriptionRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, serverutils.NewNotFound("no subscription found for this account")
	}

	return &dto.CurrentSubscriptionResponse{
		Id:              current.Id,
		SubscriptionId:  current.SubscriptionId,
		Type:            string(current.Type),
		FeatureUsage:    current.FeatureUsage,
		FeatureLimit:    current.FeatureLimit,
		StartDate:       current.StartDate,
		EndDate:         current.EndDate,
		NextBillingDate: current.NextBillingDate,
		IsActive:        current.IsActive,
	}, nil
}

func (s *currentSubscriptionService) SetDefault(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	freePlan, err := uow.SubscriptionRepository().FindFreePlan(ctx)
	if err != nil {
		return err
	}
	if freePlan == nil {
		return serverutils.NewInternal("free plan is not seeded")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	now := time.Now()
	end := now.AddDate(100, 0, 0)

	// Backing order row so every entitlement traces to an order.
	order := &entity.OrderSubscription{
		Id:                uuid.New(),
		UserId:            userId,
		SubscriptionId:    freePlan.Id,
		TransactionStatus: entity.TransactionStatusActive,
		GrossAmount:       0,
		StartDate:         now,
		EndDate:           end,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uow.OrderSubscriptionRepository().Create(ctx, order); err != nil {
		return err
	}

	current := &entity.CurrentSubscription{
		Id:                  uuid.New(),
		UserId:              userId,
		SubscriptionId:      freePlan.Id,
		OrderSubscriptionId: &order.Id,
		Type:                entity.SubscriptionTypeFree,
		FeatureUsage:        freePlan.Features.Clone(),
		FeatureLimit:        freePlan.Features.Clone(),
		StartDate:           now,
		EndDate:             end,
		NextBillingDate:     nil,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uow.CurrentSubscriptionRepository().Upsert(ctx, current); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *currentSubscriptionService) ApplyPlan(ctx context.Context, userId, planId, orderId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return err
	}
	if plan == nil {
		return serverutils.NewNotFound("subscription plan not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	current, err := uow.CurrentSubscriptionRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return err
	}

	// Guard: the order already established this entitlement.
	if current != nil && current.OrderSubscriptionId != nil && *current.OrderSubscriptionId == orderId {
		s.logger.Info("current_subscription", "plan already applied for order", map[string]interface{}{
			"user_id":  userId,
			"order_id": orderId,
		})
		return nil
	}

	now := time.Now()
	end, nextBilling := computeBillingDates(plan.PlanType, now)

	oldUsage := entity.FeatureMap{}
	if current != nil {
		oldUsage = current.FeatureUsage
	}

	merged := entity.MergeFeatureUsage(oldUsage, plan.Features)

	next := &entity.CurrentSubscription{
		Id:                  uuid.New(),
		UserId:              userId,
		SubscriptionId:      plan.Id,
		OrderSubscriptionId: &orderId,
		Type:                plan.Type,
		FeatureUsage:        merged,
		FeatureLimit:        plan.Features.Clone(),
		StartDate:           now,
		EndDate:             end,
		NextBillingDate:     nextBilling,
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if current != nil {
		next.Id = current.Id
		next.CreatedAt = current.CreatedAt
	}

	if err := uow.CurrentSubscriptionRepository().Upsert(ctx, next); err != nil {
		return err
	}

	s.logger.Info("current_subscription", "plan applied", map[string]interface{}{
		"user_id": userId,
		"plan_id": plan.Id,
		"type":    plan.Type,
	})

	return uow.Commit()
}

func (s *currentSubscriptionService) Consume(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, key entity.FeatureKey, delta int64) error {
	current, err := uow.CurrentSubscriptionRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return err
	}
	if current == nil {
		return serverutils.NewNotFound("no subscription found for this account")
	}

	if err := current.FeatureUsage.ConsumeFeature(key, delta); err != nil {
		if errors.Is(err, entity.ErrQuotaExhausted) {
			return serverutils.NewForbidden("feature quota exhausted, upgrade your plan")
		}
		return err
	}

	return uow.CurrentSubscriptionRepository().Update(ctx, current)
}

func (s *currentSubscriptionService) IsPremium(ctx context.Context, userId uuid.UUID) bool {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	current, err := uow.CurrentSubscriptionRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil || current == nil {
		return false
	}
	return current.IsActive && current.Type != entity.SubscriptionTypeFree
}

func (s *currentSubscriptionService) CheckExpiration(ctx context.Context) ([]*entity.CurrentSubscription, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	expired, err := uow.CurrentSubscriptionRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.NextBillingBefore{At: time.Now()},
	)
	if err != nil {
		return nil, err
	}

	for _, sub := range expired {
		s.logger.Warn("current_subscription", "entitlement past billing date", map[string]interface{}{
			"user_id":           sub.UserId,
			"next_billing_date": sub.NextBillingDate,
		})
	}

	return expired, nil
}
