package service

import (
	"context"
	"encoding/json"
	"time"

	"testinesia-be/internal/dto"
	"testinesia-be/internal/pkg/logger"
	"testinesia-be/internal/repository/specification"
	"testinesia-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

const (
	reminderSweepInterval = 7 * 24 * time.Hour
	reminderWindow        = 3 * 24 * time.Hour
)

// ReminderService periodically nudges premium users whose billing checkpoint
// is close, and reports entitlements already past it.
type ReminderService struct {
	uowFactory    unitofwork.RepositoryFactory
	currentSubSvc ICurrentSubscriptionService
	mailPublisher message.Publisher
	logger        logger.ILogger
}

func NewReminderService(
	uowFactory unitofwork.RepositoryFactory,
	currentSubSvc ICurrentSubscriptionService,
	mailPublisher message.Publisher,
	log logger.ILogger,
) *ReminderService {
	return &ReminderService{
		uowFactory:    uowFactory,
		currentSubSvc: currentSubSvc,
		mailPublisher: mailPublisher,
		logger:        log,
	}
}

func (s *ReminderService) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(reminderSweepInterval)
		defer ticker.Stop()

		// One sweep right away so a restarted server catches up.
		s.sweep(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *ReminderService) sweep(ctx context.Context) {
	now := time.Now()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	upcoming, err := uow.CurrentSubscriptionRepository().FindAll(ctx,
		specification.ActiveOnly{},
		specification.NextBillingBetween{From: now, To: now.Add(reminderWindow)},
	)
	if err != nil {
		s.logger.Error("reminder", "sweep query failed", map[string]interface{}{"error": err.Error()})
		return
	}

	for _, sub := range upcoming {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: sub.UserId})
		if err != nil || user == nil {
			continue
		}
		planName := ""
		if plan, perr := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: sub.SubscriptionId}); perr == nil && plan != nil {
			planName = plan.Name
		}

		dueDate := ""
		if sub.NextBillingDate != nil {
			dueDate = sub.NextBillingDate.Format("2 January 2006")
		}

		payload, err := json.Marshal(&dto.PaymentEmailMessage{
			Kind:     "reminder",
			Email:    user.Email,
			Name:     user.Name,
			PlanName: planName,
			DueDate:  dueDate,
		})
		if err != nil {
			continue
		}

		if err := s.mailPublisher.Publish(PaymentEmailTopic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
			s.logger.Error("reminder", "failed to queue reminder email", map[string]interface{}{
				"user_id": sub.UserId,
				"error":   err.Error(),
			})
		}
	}

	expired, err := s.currentSubSvc.CheckExpiration(ctx)
	if err != nil {
		s.logger.Error("reminder", "expiration check failed", map[string]interface{}{"error": err.Error()})
		return
	}

	s.logger.Info("reminder", "sweep finished", map[string]interface{}{
		"reminders_sent": len(upcoming),
		"past_due":       len(expired),
	})
}
