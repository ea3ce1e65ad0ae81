package controller

import (
	"testinesia-be/internal/dto"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssetController interface {
	RegisterRoutes(r fiber.Router)
	UploadImage(ctx *fiber.Ctx) error
	UploadVideo(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type assetController struct {
	service  service.IAssetService
	userAuth fiber.Handler
}

func NewAssetController(svc service.IAssetService, userAuth fiber.Handler) IAssetController {
	return &assetController{service: svc, userAuth: userAuth}
}

func (c *assetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/asset/v1")
	h.Use(c.userAuth)
	h.Post("/image", c.UploadImage)
	h.Post("/video", c.UploadVideo)
	h.Delete("", c.Delete)
}

func (c *assetController) UploadImage(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.NewBadRequest("file is required")
	}

	res, err := c.service.UploadImage(ctx.Context(), file)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload image", res))
}

func (c *assetController) UploadVideo(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.NewBadRequest("file is required")
	}

	res, err := c.service.UploadVideo(ctx.Context(), file)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success upload video", res))
}

func (c *assetController) Delete(ctx *fiber.Ctx) error {
	var req dto.DeleteAssetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.service.Delete(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete asset", nil))
}
