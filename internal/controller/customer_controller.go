package controller

import (
	"event-management-be/internal/dto"
	"event-management-be/internal/pkg/serverutils"
	"event-management-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICustomerController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type customerController struct {
	service service.ICustomerService
}

func NewCustomerController(service service.ICustomerService) ICustomerController {
	return &customerController{service: service}
}

func (c *customerController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/customer")
	h.Post("/createcustomer", c.Create)
	h.Get("/", c.List)
	h.Get("/detailcustomer/:id/", c.Show)
	h.Post("/updatecustomer/:id/", c.Update)
	h.Delete("/deletecustomer/:id", c.Delete)
}

func (c *customerController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req, optionalImage(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Successfully added a new customer", res))
}

func (c *customerController) List(ctx *fiber.Ctx) error {
	var req dto.ListCustomerRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("customer retrieved successfully", res))
}

func (c *customerController) Show(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "customer not found")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("customer retrieved successfully", res))
}

func (c *customerController) Update(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "customer not found")
	if err != nil {
		return err
	}

	var req dto.UpdateCustomerRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), &req, optionalImage(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Successfully updated a new customer", res))
}

func (c *customerController) Delete(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "customer not found")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("customer deleted successfully", nil))
}
