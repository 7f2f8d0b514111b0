// FILE: internal/controller/auth_controller.go
package controller

import (
	"time"

	"event-management-be/internal/dto"
	"event-management-be/internal/pkg/apperror"
	"event-management-be/internal/pkg/serverutils"
	"event-management-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
	jwt     fiber.Handler
}

// NewAuthController takes the bearer-token middleware guarding /user and /logout.
func NewAuthController(service service.IAuthService, jwt fiber.Handler) IAuthController {
	return &authController{service: service, jwt: jwt}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	r.Post("/register", c.Register)
	r.Post("/login", c.Login)
	r.Get("/user", c.jwt, c.Me)
	r.Post("/logout", c.jwt, c.Logout)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("User registered successfully", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals(serverutils.LocalUserId).(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return apperror.NewUnauthorizedError("token_invalid")
	}

	res, err := c.service.Me(ctx.UserContext(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Authenticated user", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	tokenId, _ := ctx.Locals(serverutils.LocalTokenId).(string)
	expiresAt, _ := ctx.Locals(serverutils.LocalTokenExp).(time.Time)

	if err := c.service.Logout(ctx.UserContext(), tokenId, expiresAt); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out", nil))
}
