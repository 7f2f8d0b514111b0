package controller

import (
	"event-management-be/internal/dto"
	"event-management-be/internal/pkg/serverutils"
	"event-management-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEventController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type eventController struct {
	service service.IEventService
}

func NewEventController(service service.IEventService) IEventController {
	return &eventController{service: service}
}

func (c *eventController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/event")
	h.Post("/createevent", c.Create)
	h.Get("/", c.List)
	h.Get("/detailevent/:id/", c.Show)
	h.Post("/updateevent/:id/", c.Update)
	h.Delete("/deleteevent/:id", c.Delete)
}

func (c *eventController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateEventRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Successfully added a new event", res))
}

func (c *eventController) List(ctx *fiber.Ctx) error {
	var req dto.ListEventRequest
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
	return ctx.JSON(serverutils.SuccessResponse("event retrieved successfully", res))
}

func (c *eventController) Show(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "event not found")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("event retrieved successfully", res))
}

func (c *eventController) Update(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "event not found")
	if err != nil {
		return err
	}

	var req dto.UpdateEventRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Successfully updated a new event", res))
}

func (c *eventController) Delete(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "event not found")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("event deleted successfully", nil))
}
