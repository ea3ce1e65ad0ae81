package controller

import (
	"testinesia-be/internal/dto"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFormController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	GetPublic(ctx *fiber.Ctx) error
	SubmitTestimonial(ctx *fiber.Ctx) error
}

type formController struct {
	formService        service.IFormService
	testimonialService service.ITestimonialService
	userAuth           fiber.Handler
}

func NewFormController(formService service.IFormService, testimonialService service.ITestimonialService, userAuth fiber.Handler) IFormController {
	return &formController{
		formService:        formService,
		testimonialService: testimonialService,
		userAuth:           userAuth,
	}
}

func (c *formController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/form/v1")
	h.Get("", c.userAuth, c.GetAll)
	h.Post("", c.userAuth, c.Create)
	h.Get("/:slug", c.userAuth, c.Show)
	h.Put("/:slug", c.userAuth, c.Update)
	h.Delete("/:slug", c.userAuth, c.Delete)

	// Public submission surface, no auth.
	p := r.Group("/public/v1/form")
	p.Get("/:slug", c.GetPublic)
	p.Post("/:slug/testimonial", c.SubmitTestimonial)
}

func (c *formController) Create(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.CreateFormRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.formService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create form", res))
}

func (c *formController) GetAll(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.formService.FindAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all forms", res))
}

func (c *formController) Show(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	res, err := c.formService.FindBySlug(ctx.Context(), userId, ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get form", res))
}

func (c *formController) Update(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	var req dto.UpdateFormRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.formService.Update(ctx.Context(), userId, ctx.Params("slug"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update form", res))
}

func (c *formController) Delete(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	if err := c.formService.Delete(ctx.Context(), userId, ctx.Params("slug")); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete form", nil))
}

func (c *formController) GetPublic(ctx *fiber.Ctx) error {
	res, err := c.formService.GetPublic(ctx.Context(), ctx.Params("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get form", res))
}

func (c *formController) SubmitTestimonial(ctx *fiber.Ctx) error {
	var req dto.SubmitTestimonialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.testimonialService.Submit(ctx.Context(), ctx.Params("slug"), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success submit testimonial", res))
}
