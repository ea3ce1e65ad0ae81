package controller

import (
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	GetPublicPlans(ctx *fiber.Ctx) error
	GetCurrent(ctx *fiber.Ctx) error
	GetPremiumStatus(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	planService       service.ISubscriptionService
	currentSubService service.ICurrentSubscriptionService
	userAuth          fiber.Handler
}

func NewSubscriptionController(
	planService service.ISubscriptionService,
	currentSubService service.ICurrentSubscriptionService,
	userAuth fiber.Handler,
) ISubscriptionController {
	return &subscriptionController{
		planService:       planService,
		currentSubService: currentSubService,
		userAuth:          userAuth,
	}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscription/v1")
	h.Get("/plans", c.GetPublicPlans)
	h.Get("/current", c.userAuth, c.GetCurrent)
	h.Get("/premium-status", c.userAuth, c.GetPremiumStatus)
}

func (c *subscriptionController) GetPublicPlans(ctx *fiber.Ctx) error {
	res, err := c.planService.FindAllPublic(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get plans", res))
}

func (c *subscriptionController) GetCurrent(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.currentSubService.GetCurrent(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get current subscription", res))
}

func (c *subscriptionController) GetPremiumStatus(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	isPremium := c.currentSubService.IsPremium(ctx.Context(), userId)

	return ctx.JSON(serverutils.SuccessResponse("Success get premium status", fiber.Map{
		"is_premium": isPremium,
	}))
}
