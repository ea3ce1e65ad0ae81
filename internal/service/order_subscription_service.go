package service

import (
	"context"
	"crypto/sha512"
	"encoding/json"
	"fmt"
	"time"

	"testinesia-be/internal/config"
	"testinesia-be/internal/dto"
	"testinesia-be/internal/entity"
	"testinesia-be/internal/pkg/logger"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/repository/specification"
	"testinesia-be/internal/repository/unitofwork"
	"testinesia-be/pkg/events"
	pktNats "testinesia-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

// PaymentEmailTopic is the in-process queue the mail consumer drains.
const PaymentEmailTopic = "payment.emails"

type IOrderSubscriptionService interface {
	CreatePaymentToken(ctx context.Context, userId uuid.UUID, req *dto.CreatePaymentTokenRequest) (*dto.PaymentTokenResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
	// ConfirmFinishRedirect re-verifies the order against the gateway before
	// trusting a browser redirect.
	ConfirmFinishRedirect(ctx context.Context, orderId string) (*dto.OrderHistoryResponse, error)
	GetUserOrderHistory(ctx context.Context, userId uuid.UUID, page, limit int) (*dto.PaginatedResponse[*dto.OrderHistoryResponse], error)
	FindTransactions(ctx context.Context, status string, page, limit int) (*dto.PaginatedResponse[*dto.OrderTransactionResponse], error)
	FindOne(ctx context.Context, id uuid.UUID) (*dto.OrderHistoryResponse, error)
	Remove(ctx context.Context, id uuid.UUID) error
	// Grant activates a plan for a user without going through the gateway.
	Grant(ctx context.Context, userId, planId uuid.UUID) (*dto.OrderHistoryResponse, error)
}

type orderSubscriptionService struct {
	uowFactory     unitofwork.RepositoryFactory
	currentSubSvc  ICurrentSubscriptionService
	mailPublisher  message.Publisher
	eventPublisher *pktNats.Publisher
	snapClient     snap.Client
	coreClient     coreapi.Client
	midtransConfig config.MidtransConfig
	clientURL      string
	logger         logger.ILogger
}

func NewOrderSubscriptionService(
	uowFactory unitofwork.RepositoryFactory,
	currentSubSvc ICurrentSubscriptionService,
	mailPublisher message.Publisher,
	eventPublisher *pktNats.Publisher,
	midtransConfig config.MidtransConfig,
	clientURL string,
	log logger.ILogger,
) IOrderSubscriptionService {
	env := midtrans.Sandbox
	if midtransConfig.IsProduction {
		env = midtrans.Production
	}

	var sClient snap.Client
	sClient.New(midtransConfig.ServerKey, env)

	var cClient coreapi.Client
	cClient.New(midtransConfig.ServerKey, env)

	return &orderSubscriptionService{
		uowFactory:     uowFactory,
		currentSubSvc:  currentSubSvc,
		mailPublisher:  mailPublisher,
		eventPublisher: eventPublisher,
		snapClient:     sClient,
		coreClient:     cClient,
		midtransConfig: midtransConfig,
		clientURL:      clientURL,
		logger:         log,
	}
}

func toOrderHistoryResponse(order *entity.OrderSubscription, planName string) *dto.OrderHistoryResponse {
	return &dto.OrderHistoryResponse{
		Id:                order.Id,
		SubscriptionId:    order.SubscriptionId,
		PlanName:          planName,
		OrderPayment:      order.OrderPayment,
		TransactionStatus: string(order.TransactionStatus),
		GrossAmount:       order.GrossAmount,
		StartDate:         order.StartDate,
		EndDate:           order.EndDate,
		NextBillingDate:   order.NextBillingDate,
		CreatedAt:         order.CreatedAt,
	}
}

func (s *orderSubscriptionService) CreatePaymentToken(ctx context.Context, userId uuid.UUID, req *dto.CreatePaymentTokenRequest) (*dto.PaymentTokenResponse, error) {
	planId, err := uuid.Parse(req.SubscriptionId)
	if err != nil {
		return nil, serverutils.NewBadRequest("invalid subscription id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, serverutils.NewNotFound("subscription plan not found")
	}
	if plan.Type == entity.SubscriptionTypeFree {
		return nil, serverutils.NewBadRequest("the free plan does not require payment")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFound("user not found")
	}

	now := time.Now()
	end, nextBilling := computeBillingDates(plan.PlanType, now)

	order := &entity.OrderSubscription{
		Id:                uuid.New(),
		UserId:            userId,
		SubscriptionId:    plan.Id,
		TransactionStatus: entity.TransactionStatusPending,
		GrossAmount:       plan.Price,
		StartDate:         now,
		EndDate:           end,
		NextBillingDate:   nextBilling,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.OrderSubscriptionRepository().Create(ctx, order); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// Gateway call stays outside the transaction.
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.Id.String(),
			GrossAmt: plan.Price,
		},
		CreditCard: &snap.CreditCardDetails{Secure: true},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/payment/finish", s.clientURL),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: user.Name,
			Email: user.Email,
			Phone: user.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    plan.Id.String(),
				Price: plan.Price,
				Qty:   1,
				Name:  plan.Name,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := s.snapClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, serverutils.NewInternal(fmt.Sprintf("payment gateway error: %s", midErr.GetMessage()))
	}

	s.logger.Info("order_subscription", "payment token created", map[string]interface{}{
		"order_id": order.Id,
		"user_id":  userId,
		"plan_id":  plan.Id,
	})

	return &dto.PaymentTokenResponse{
		OrderId:     order.Id,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

// mapTransactionStatus folds the gateway vocabulary into ours.
func mapTransactionStatus(transactionStatus string) entity.TransactionStatus {
	switch transactionStatus {
	case "capture", "settlement":
		return entity.TransactionStatusSuccess
	case "deny", "cancel", "expire", "failure":
		return entity.TransactionStatusFailed
	default:
		return entity.TransactionStatusPending
	}
}

// verifySignature checks SHA512(order_id + status_code + gross_amount + server_key).
func verifySignature(req *dto.MidtransWebhookRequest, serverKey string) bool {
	input := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expected := fmt.Sprintf("%x", sha512.Sum512([]byte(input)))
	return req.SignatureKey == expected
}

func (s *orderSubscriptionService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	if s.midtransConfig.ServerKey == "" {
		return serverutils.NewInternal("payment gateway is not configured")
	}

	if !verifySignature(req, s.midtransConfig.ServerKey) {
		s.logger.Warn("order_subscription", "webhook signature mismatch", map[string]interface{}{
			"order_id": req.OrderId,
		})
		return serverutils.NewUnauthorized("invalid signature")
	}

	orderId, err := uuid.Parse(req.OrderId)
	if err != nil {
		return serverutils.NewBadRequest("invalid order id format")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	order, err := uow.OrderSubscriptionRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return err
	}
	if order == nil {
		return serverutils.NewNotFound("order not found")
	}

	// A settled order never moves again; retried notifications are no-ops.
	if order.TransactionStatus == entity.TransactionStatusSuccess {
		return nil
	}

	newStatus := mapTransactionStatus(req.TransactionStatus)

	order.TransactionStatus = newStatus
	if req.PaymentType != "" {
		order.OrderPayment = &req.PaymentType
	}
	if req.Raw != nil {
		order.PaymentBase = req.Raw
	}
	order.UpdatedAt = time.Now()

	if newStatus == entity.TransactionStatusSuccess {
		now := time.Now()
		end, nextBilling := computeBillingDates(entity.PlanTypeMonthly, now)
		if plan, perr := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: order.SubscriptionId}); perr == nil && plan != nil {
			end, nextBilling = computeBillingDates(plan.PlanType, now)
		}
		order.StartDate = now
		order.EndDate = end
		order.NextBillingDate = nextBilling
	}

	if err := uow.OrderSubscriptionRepository().Update(ctx, order); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.logger.Info("order_subscription", "webhook processed", map[string]interface{}{
		"order_id": order.Id,
		"status":   newStatus,
	})

	if newStatus == entity.TransactionStatusSuccess {
		if err := s.currentSubSvc.ApplyPlan(ctx, order.UserId, order.SubscriptionId, order.Id); err != nil {
			s.logger.Error("order_subscription", "failed to apply purchased plan", map[string]interface{}{
				"order_id": order.Id,
				"error":    err.Error(),
			})
			return err
		}

		if s.eventPublisher != nil {
			evt := events.BaseEvent{
				Type: "ORDER_PAID",
				Data: map[string]interface{}{
					"order_id":        order.Id,
					"user_id":         order.UserId,
					"subscription_id": order.SubscriptionId,
					"gross_amount":    order.GrossAmount,
				},
				OccurredAt: time.Now(),
			}
			if err := s.eventPublisher.Publish(ctx, evt); err != nil {
				s.logger.Warn("order_subscription", "failed to publish order event", map[string]interface{}{
					"order_id": order.Id,
					"error":    err.Error(),
				})
			}
		}
	}

	s.queuePaymentEmail(ctx, order, newStatus)

	return nil
}

// queuePaymentEmail hands the notification to the mail queue; delivery
// failures never fail the webhook.
func (s *orderSubscriptionService) queuePaymentEmail(ctx context.Context, order *entity.OrderSubscription, status entity.TransactionStatus) {
	if s.mailPublisher == nil {
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: order.UserId})
	if err != nil || user == nil {
		return
	}
	planName := ""
	if plan, perr := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: order.SubscriptionId}); perr == nil && plan != nil {
		planName = plan.Name
	}

	var kind string
	switch status {
	case entity.TransactionStatusSuccess:
		kind = "success"
	case entity.TransactionStatusFailed:
		kind = "failed"
	default:
		kind = "pending"
	}

	payload, err := json.Marshal(&dto.PaymentEmailMessage{
		Kind:     kind,
		Email:    user.Email,
		Name:     user.Name,
		PlanName: planName,
		Amount:   order.GrossAmount,
	})
	if err != nil {
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.mailPublisher.Publish(PaymentEmailTopic, msg); err != nil {
		s.logger.Error("order_subscription", "failed to queue payment email", map[string]interface{}{
			"order_id": order.Id,
			"error":    err.Error(),
		})
	}
}

func (s *orderSubscriptionService) ConfirmFinishRedirect(ctx context.Context, orderIdStr string) (*dto.OrderHistoryResponse, error) {
	orderId, err := uuid.Parse(orderIdStr)
	if err != nil {
		return nil, serverutils.NewBadRequest("invalid order id")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderSubscriptionRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, serverutils.NewNotFound("order not found")
	}

	planName := ""
	if plan, perr := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: order.SubscriptionId}); perr == nil && plan != nil {
		planName = plan.Name
	}

	if order.TransactionStatus == entity.TransactionStatusSuccess {
		return toOrderHistoryResponse(order, planName), nil
	}

	// The redirect alone proves nothing; ask the gateway.
	txn, midErr := s.coreClient.CheckTransaction(orderIdStr)
	if midErr != nil {
		return nil, serverutils.NewInternal(fmt.Sprintf("payment gateway error: %s", midErr.GetMessage()))
	}

	settled := (txn.TransactionStatus == "settlement" || txn.TransactionStatus == "capture") &&
		(txn.FraudStatus == "" || txn.FraudStatus == "accept")
	if !settled {
		return nil, serverutils.NewBadRequest("payment is not settled yet")
	}

	webhookReq := &dto.MidtransWebhookRequest{
		OrderId:           orderIdStr,
		StatusCode:        txn.StatusCode,
		GrossAmount:       txn.GrossAmount,
		TransactionStatus: txn.TransactionStatus,
		FraudStatus:       txn.FraudStatus,
		PaymentType:       txn.PaymentType,
		TransactionId:     txn.TransactionID,
	}
	input := webhookReq.OrderId + webhookReq.StatusCode + webhookReq.GrossAmount + s.midtransConfig.ServerKey
	webhookReq.SignatureKey = fmt.Sprintf("%x", sha512.Sum512([]byte(input)))

	if err := s.HandleNotification(ctx, webhookReq); err != nil {
		return nil, err
	}

	order, err = uow.OrderSubscriptionRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return nil, err
	}

	return toOrderHistoryResponse(order, planName), nil
}

func (s *orderSubscriptionService) GetUserOrderHistory(ctx context.Context, userId uuid.UUID, page, limit int) (*dto.PaginatedResponse[*dto.OrderHistoryResponse], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	owned := specification.UserOwnedBy{UserID: userId}
	total, err := uow.OrderSubscriptionRepository().Count(ctx, owned)
	if err != nil {
		return nil, err
	}

	orders, err := uow.OrderSubscriptionRepository().FindAll(ctx,
		owned,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, err
	}

	planNames := map[uuid.UUID]string{}
	items := make([]*dto.OrderHistoryResponse, 0, len(orders))
	for _, order := range orders {
		name, ok := planNames[order.SubscriptionId]
		if !ok {
			if plan, perr := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: order.SubscriptionId}); perr == nil && plan != nil {
				name = plan.Name
			}
			planNames[order.SubscriptionId] = name
		}
		items = append(items, toOrderHistoryResponse(order, name))
	}

	return &dto.PaginatedResponse[*dto.OrderHistoryResponse]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s *orderSubscriptionService) FindTransactions(ctx context.Context, status string, page, limit int) (*dto.PaginatedResponse[*dto.OrderTransactionResponse], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	transactions, total, err := uow.OrderSubscriptionRepository().FindTransactions(ctx, status, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.OrderTransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		items = append(items, &dto.OrderTransactionResponse{
			Id:                t.Id,
			UserName:          t.UserName,
			UserEmail:         t.UserEmail,
			PlanName:          t.PlanName,
			GrossAmount:       t.GrossAmount,
			TransactionStatus: string(t.TransactionStatus),
			OrderPayment:      t.OrderPayment,
			CreatedAt:         t.CreatedAt,
		})
	}

	return &dto.PaginatedResponse[*dto.OrderTransactionResponse]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s *orderSubscriptionService) FindOne(ctx context.Context, id uuid.UUID) (*dto.OrderHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderSubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, serverutils.NewNotFound("order not found")
	}

	planName := ""
	if plan, perr := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: order.SubscriptionId}); perr == nil && plan != nil {
		planName = plan.Name
	}

	return toOrderHistoryResponse(order, planName), nil
}

func (s *orderSubscriptionService) Remove(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderSubscriptionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if order == nil {
		return serverutils.NewNotFound("order not found")
	}
	if order.TransactionStatus == entity.TransactionStatusSuccess || order.TransactionStatus == entity.TransactionStatusActive {
		return serverutils.NewBadRequest("settled orders cannot be removed")
	}

	return uow.OrderSubscriptionRepository().Delete(ctx, id)
}

func (s *orderSubscriptionService) Grant(ctx context.Context, userId, planId uuid.UUID) (*dto.OrderHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plan, err := uow.SubscriptionRepository().FindOne(ctx, specification.ByID{ID: planId})
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, serverutils.NewNotFound("subscription plan not found")
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFound("user not found")
	}

	now := time.Now()
	end, nextBilling := computeBillingDates(plan.PlanType, now)
	grantRef := "admin_grant"

	order := &entity.OrderSubscription{
		Id:                uuid.New(),
		UserId:            userId,
		SubscriptionId:    plan.Id,
		OrderPayment:      &grantRef,
		TransactionStatus: entity.TransactionStatusSuccess,
		GrossAmount:       0,
		StartDate:         now,
		EndDate:           end,
		NextBillingDate:   nextBilling,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.OrderSubscriptionRepository().Create(ctx, order); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if err := s.currentSubSvc.ApplyPlan(ctx, userId, plan.Id, order.Id); err != nil {
		return nil, err
	}

	s.logger.Info("order_subscription", "plan granted by admin", map[string]interface{}{
		"order_id": order.Id,
		"user_id":  userId,
		"plan_id":  plan.Id,
	})

	s.queuePaymentEmail(ctx, order, entity.TransactionStatusSuccess)

	return toOrderHistoryResponse(order, plan.Name), nil
}
