package controller

import (
	"testinesia-be/internal/dto"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWidgetController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetPublic(ctx *fiber.Ctx) error
}

type widgetController struct {
	service  service.IWidgetService
	userAuth fiber.Handler
}

func NewWidgetController(svc service.IWidgetService, userAuth fiber.Handler) IWidgetController {
	return &widgetController{service: svc, userAuth: userAuth}
}

func (c *widgetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/widget/v1")
	h.Get("", c.userAuth, c.GetAll)
	h.Post("", c.userAuth, c.Create)
	h.Put("/:id", c.userAuth, c.Update)
	h.Delete("/:id", c.userAuth, c.Delete)

	p := r.Group("/public/v1/widget")
	p.Get("/:id", c.GetPublic)
}

func (c *widgetController) Create(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.CreateWidgetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create widget", res))
}

func (c *widgetController) GetAll(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.service.FindAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all widgets", res))
}

func (c *widgetController) Update(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	widgetId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("invalid widget id")
	}

	var req dto.UpdateWidgetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), userId, widgetId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update widget", res))
}

func (c *widgetController) Delete(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	widgetId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("invalid widget id")
	}

	if err := c.service.Delete(ctx.Context(), userId, widgetId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete widget", nil))
}

func (c *widgetController) GetPublic(ctx *fiber.Ctx) error {
	widgetId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("invalid widget id")
	}

	res, err := c.service.GetPublic(ctx.Context(), widgetId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get widget", res))
}
