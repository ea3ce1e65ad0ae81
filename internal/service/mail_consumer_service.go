package service

import (
	"context"
	"encoding/json"

	"testinesia-be/internal/dto"
	"testinesia-be/internal/pkg/logger"
	"testinesia-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
)

// MailConsumerService drains the payment email queue so gateway webhooks
// never wait on SMTP.
type MailConsumerService struct {
	subscriber message.Subscriber
	emailSvc   mailer.IEmailService
	logger     logger.ILogger
}

func NewMailConsumerService(subscriber message.Subscriber, emailSvc mailer.IEmailService, log logger.ILogger) *MailConsumerService {
	return &MailConsumerService{
		subscriber: subscriber,
		emailSvc:   emailSvc,
		logger:     log,
	}
}

func (s *MailConsumerService) Start(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, PaymentEmailTopic)
	if err != nil {
		return err
	}

	go s.process(messages)

	s.logger.Info("mail_consumer", "listening for payment emails", nil)
	return nil
}

func (s *MailConsumerService) process(messages <-chan *message.Message) {
	for msg := range messages {
		var payload dto.PaymentEmailMessage
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			// Poison message, retrying will never help.
			s.logger.Error("mail_consumer", "dropping malformed mail message", map[string]interface{}{
				"message_id": msg.UUID,
				"error":      err.Error(),
			})
			msg.Ack()
			continue
		}

		if err := s.handle(&payload); err != nil {
			s.logger.Error("mail_consumer", "mail delivery failed, requeueing", map[string]interface{}{
				"message_id": msg.UUID,
				"kind":       payload.Kind,
				"error":      err.Error(),
			})
			msg.Nack()
			continue
		}

		msg.Ack()
	}
}

func (s *MailConsumerService) handle(payload *dto.PaymentEmailMessage) error {
	switch payload.Kind {
	case "success":
		return s.emailSvc.SendPaymentSuccessEmail(payload.Email, payload.Name, payload.PlanName, payload.Amount)
	case "pending":
		return s.emailSvc.SendPaymentPendingEmail(payload.Email, payload.Name, payload.PlanName, payload.Amount)
	case "failed":
		return s.emailSvc.SendPaymentFailedEmail(payload.Email, payload.Name, payload.PlanName)
	case "reminder":
		return s.emailSvc.SendRenewalReminderEmail(payload.Email, payload.Name, payload.PlanName, payload.DueDate)
	default:
		s.logger.Warn("mail_consumer", "unknown mail kind, dropping", map[string]interface{}{"kind": payload.Kind})
		return nil
	}
}
