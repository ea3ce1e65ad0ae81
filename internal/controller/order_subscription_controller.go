package controller

import (
	"encoding/json"

	"testinesia-be/internal/dto"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IOrderSubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	CreatePaymentToken(ctx *fiber.Ctx) error
	HandleNotification(ctx *fiber.Ctx) error
	FinishRedirect(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
}

type orderSubscriptionController struct {
	service  service.IOrderSubscriptionService
	userAuth fiber.Handler
}

func NewOrderSubscriptionController(svc service.IOrderSubscriptionService, userAuth fiber.Handler) IOrderSubscriptionController {
	return &orderSubscriptionController{service: svc, userAuth: userAuth}
}

func (c *orderSubscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/payment/v1")
	h.Post("/token", c.userAuth, c.CreatePaymentToken)
	h.Post("/notification", c.HandleNotification) // gateway webhook, signature-authenticated
	h.Get("/finish", c.FinishRedirect)
	h.Get("/history", c.userAuth, c.GetHistory)
}

func (c *orderSubscriptionController) CreatePaymentToken(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.CreatePaymentTokenRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreatePaymentToken(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create payment token", res))
}

func (c *orderSubscriptionController) HandleNotification(ctx *fiber.Ctx) error {
	var req dto.MidtransWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	// Keep the whole payload for the audit column.
	var raw map[string]interface{}
	if err := json.Unmarshal(ctx.Body(), &raw); err == nil {
		req.Raw = raw
	}

	if err := c.service.HandleNotification(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("OK", nil))
}

func (c *orderSubscriptionController) FinishRedirect(ctx *fiber.Ctx) error {
	orderId := ctx.Query("order_id")
	if orderId == "" {
		return serverutils.NewBadRequest("order_id is required")
	}

	res, err := c.service.ConfirmFinishRedirect(ctx.Context(), orderId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success confirm payment", res))
}

func (c *orderSubscriptionController) GetHistory(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 10)

	res, err := c.service.GetUserOrderHistory(ctx.Context(), userId, page, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get order history", res))
}
