package controller

import (
	"testinesia-be/internal/dto"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
}

type adminController struct {
	adminService        service.IAdminService
	subscriptionService service.ISubscriptionService
	orderService        service.IOrderSubscriptionService
	adminAuth           fiber.Handler
	superadminAuth      fiber.Handler
}

func NewAdminController(
	adminService service.IAdminService,
	subscriptionService service.ISubscriptionService,
	orderService service.IOrderSubscriptionService,
	adminAuth fiber.Handler,
	superadminAuth fiber.Handler,
) IAdminController {
	return &adminController{
		adminService:        adminService,
		subscriptionService: subscriptionService,
		orderService:        orderService,
		adminAuth:           adminAuth,
		superadminAuth:      superadminAuth,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")

	h.Get("/profile", c.adminAuth, c.GetProfile)
	h.Get("/dashboard", c.adminAuth, c.GetDashboard)

	// Account management is superadmin territory.
	h.Get("/admins", c.superadminAuth, c.GetAdmins)
	h.Post("/admins", c.superadminAuth, c.CreateAdmin)
	h.Get("/admins/:id", c.superadminAuth, c.GetAdmin)
	h.Put("/admins/:id", c.superadminAuth, c.UpdateAdmin)
	h.Delete("/admins/:id", c.superadminAuth, c.DeleteAdmin)

	h.Get("/subscriptions", c.adminAuth, c.GetSubscriptions)
	h.Post("/subscriptions", c.superadminAuth, c.CreateSubscription)
	h.Get("/subscriptions/:id", c.adminAuth, c.GetSubscription)
	h.Put("/subscriptions/:id", c.superadminAuth, c.UpdateSubscription)
	h.Delete("/subscriptions/:id", c.superadminAuth, c.DeleteSubscription)

	h.Get("/transactions", c.adminAuth, c.GetTransactions)
	h.Post("/transactions", c.superadminAuth, c.GrantSubscription)
	h.Get("/transactions/:id", c.adminAuth, c.GetTransaction)
	h.Delete("/transactions/:id", c.superadminAuth, c.DeleteTransaction)

	h.Get("/logs", c.superadminAuth, c.GetLogs)
	h.Get("/logs/:id", c.superadminAuth, c.GetLog)
}

func (c *adminController) GetProfile(ctx *fiber.Ctx) error {
	adminId, _ := uuid.Parse(ctx.Locals("admin_id").(string))

	res, err := c.adminService.FindOne(ctx.Context(), adminId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *adminController) GetDashboard(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetDashboardStats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard stats", res))
}

func (c *adminController) GetAdmins(ctx *fiber.Ctx) error {
	res, err := c.adminService.FindAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get admins", res))
}

func (c *adminController) CreateAdmin(ctx *fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create admin", res))
}

func (c *adminController) GetAdmin(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("invalid admin id")
	}

	res, err := c.adminService.FindOne(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get admin", res))
}

func (c *adminController) UpdateAdmin(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("invalid admin id")
	}

	var req dto.UpdateAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.adminService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update admin", res))
}

func (c *adminController) DeleteAdmin(ctx *fiber.Ctx) error {
	actorId, _ := uuid.Parse(ctx.Locals("admin_id").(string))
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("invalid admin id")
	}

	if err := c.adminService.Delete(ctx.Context(), actorId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete admin", nil))
}

func (c *adminController) GetSubscriptions(ctx *fiber.Ctx) error {
	res, err := c.subscriptionService.FindAll(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get subscriptions", res))
}

func (c *adminController) CreateSubscription(ctx *fiber.Ctx) error {
	adminId, _ := uuid.Parse(ctx.Locals("admin_id").(string))

	var req dto.CreateSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.subscriptionService.Create(ctx.Context(), adminId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create subscription", res))
}

func (c *adminController) GetSubscription(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("invalid subscription id")
	}

	res, err := c.subscriptionService.FindOne(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get subscription", res))
}

func (c *adminController) UpdateSubscription(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("invalid subscription id")
	}

	var req dto.UpdateSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.subscriptionService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update subscription", res))
}

func (c *adminController) DeleteSubscription(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("invalid subscription id")
	}

	if err := c.subscriptionService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete subscription", nil))
}

func (c *adminController) GetTransactions(ctx *fiber.Ctx) error {
	res, err := c.orderService.FindTransactions(ctx.Context(),
		ctx.Query("status"),
		ctx.QueryInt("page", 1),
		ctx.QueryInt("limit", 20),
	)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get transactions", res))
}

func (c *adminController) GetTransaction(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("invalid transaction id")
	}

	res, err := c.orderService.FindOne(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get transaction", res))
}

func (c *adminController) GrantSubscription(ctx *fiber.Ctx) error {
	var req dto.GrantSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	userId, _ := uuid.Parse(req.UserId)
	planId, _ := uuid.Parse(req.SubscriptionId)

	res, err := c.orderService.Grant(ctx.Context(), userId, planId)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success grant subscription", res))
}

func (c *adminController) DeleteTransaction(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("invalid transaction id")
	}

	if err := c.orderService.Remove(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete transaction", nil))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetLogs(ctx.Context(),
		ctx.Query("level"),
		ctx.QueryInt("limit", 100),
		ctx.QueryInt("offset", 0),
	)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get logs", res))
}

func (c *adminController) GetLog(ctx *fiber.Ctx) error {
	res, err := c.adminService.GetLogById(ctx.Context(), ctx.Params("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get log", res))
}
