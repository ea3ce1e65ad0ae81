package controller

import (
	"testinesia-be/internal/dto"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IShowcaseController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetPublic(ctx *fiber.Ctx) error
}

type showcaseController struct {
	service  service.IShowcaseService
	userAuth fiber.Handler
}

func NewShowcaseController(svc service.IShowcaseService, userAuth fiber.Handler) IShowcaseController {
	return &showcaseController{service: svc, userAuth: userAuth}
}

func (c *showcaseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/showcase/v1")
	h.Get("", c.userAuth, c.GetAll)
	h.Post("", c.userAuth, c.Create)
	h.Put("/:slug", c.userAuth, c.Update)
	h.Delete("/:slug", c.userAuth, c.Delete)

	p := r.Group("/public/v1/showcase")
	p.Get("/:slug", c.GetPublic)
}

func (c *showcaseController) Create(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.CreateShowcaseRequest
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

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create showcase", res))
}

func (c *showcaseController) GetAll(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.service.FindAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all showcases", res))
}

func (c *showcaseController) Update(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.UpdateShowcaseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), userId, ctx.Params("slug"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update showcase", res))
}

func (c *showcaseController) Delete(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	if err := c.service.Delete(ctx.Context(), userId, ctx.Params("slug")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete showcase", nil))
}

func (c *showcaseController) GetPublic(ctx *fiber.Ctx) error {
	res, err := c.service.GetPublic(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get showcase", res))
}
