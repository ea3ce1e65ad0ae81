package controller

import (
	"testinesia-be/internal/dto"
	"testinesia-be/internal/pkg/serverutils"
	"testinesia-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	VerifyEmail(ctx *fiber.Ctx) error
	SignIn(ctx *fiber.Ctx) error
	SignOut(ctx *fiber.Ctx) error
	AdminSignIn(ctx *fiber.Ctx) error
	AdminSignOut(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	userService service.IUserService
	userAuth    fiber.Handler
	adminAuth   fiber.Handler
}

func NewAuthController(authService service.IAuthService, userService service.IUserService, userAuth, adminAuth fiber.Handler) IAuthController {
	return &authController{
		authService: authService,
		userService: userService,
		userAuth:    userAuth,
		adminAuth:   adminAuth,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("/register", c.Register)
	h.Post("/verify-email", c.VerifyEmail)
	h.Post("/sign-in", c.SignIn)
	h.Post("/sign-out", c.userAuth, c.SignOut)
	h.Post("/admin/sign-in", c.AdminSignIn)
	h.Post("/admin/sign-out", c.adminAuth, c.AdminSignOut)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.userService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success register, check your email to verify", res))
}

func (c *authController) VerifyEmail(ctx *fiber.Ctx) error {
	var req dto.VerifyEmailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.userService.VerifyEmail(ctx.Context(), &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success verify email", nil))
}

func (c *authController) SignIn(ctx *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.SignIn(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success sign in", res))
}

func (c *authController) SignOut(ctx *fiber.Ctx) error {
	userId, _ := uuid.Parse(ctx.Locals("user_id").(string))

	if err := c.authService.SignOut(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success sign out", nil))
}

func (c *authController) AdminSignIn(ctx *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.AdminSignIn(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success sign in", res))
}

func (c *authController) AdminSignOut(ctx *fiber.Ctx) error {
	adminId, _ := uuid.Parse(ctx.Locals("admin_id").(string))

	if err := c.authService.AdminSignOut(ctx.Context(), adminId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success sign out", nil))
}
