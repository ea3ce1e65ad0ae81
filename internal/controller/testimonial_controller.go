package controller

import (
	"testinesia-be/internal/dto"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITestimonialController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Import(ctx *fiber.Ctx) error
	UpdateStatus(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetPublicApproved(ctx *fiber.Ctx) error
}

type testimonialController struct {
	service  service.ITestimonialService
	userAuth fiber.Handler
}

func NewTestimonialController(svc service.ITestimonialService, userAuth fiber.Handler) ITestimonialController {
	return &testimonialController{service: svc, userAuth: userAuth}
}

func (c *testimonialController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/testimonial/v1")
	h.Use(c.userAuth)
	h.Get("", c.GetAll)
	h.Post("/import", c.Import)
	h.Patch("/:id/status", c.UpdateStatus)
	h.Delete("/:id", c.Delete)

	p := r.Group("/public/v1/testimonial")
	p.Get("/:projectId", c.GetPublicApproved)
}

func (c *testimonialController) GetAll(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	projectId, err := uuid.Parse(ctx.Query("project_id"))
	if err != nil {
		return serverutils.NewBadRequest("project_id is required")
	}

	res, err := c.service.FindAll(ctx.Context(), userId, projectId,
		ctx.Query("type"),
		ctx.QueryInt("page", 1),
		ctx.QueryInt("limit", 20),
	)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get testimonials", res))
}

func (c *testimonialController) Import(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.ImportTestimonialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Import(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success import testimonial", res))
}

func (c *testimonialController) UpdateStatus(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	testimonialId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("invalid testimonial id")
	}

	var req dto.UpdateTestimonialStatusRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.UpdateStatus(ctx.Context(), userId, testimonialId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success update testimonial status", nil))
}

func (c *testimonialController) Delete(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))
	testimonialId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewBadRequest("invalid testimonial id")
	}

	if err := c.service.Delete(ctx.Context(), userId, testimonialId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete testimonial", nil))
}

func (c *testimonialController) GetPublicApproved(ctx *fiber.Ctx) error {
	projectId, err := uuid.Parse(ctx.Params("projectId"))
	if err != nil {
		return serverutils.NewBadRequest("invalid project id")
	}

	res, err := c.service.FindApproved(ctx.Context(), projectId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get testimonials", res))
}
