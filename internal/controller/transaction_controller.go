package controller

import (
	"event-management-be/internal/dto"
	"event-management-be/internal/pkg/serverutils"
	"event-management-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITransactionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Checkout(ctx *fiber.Ctx) error
}

type transactionController struct {
	service service.ITransactionService
}

func NewTransactionController(service service.ITransactionService) ITransactionController {
	return &transactionController{service: service}
}

func (c *transactionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/transaction")
	h.Post("/createtransaction", c.Create)
	h.Get("/", c.List)
	h.Get("/detailtransaction/:id/", c.Show)
	h.Post("/updatetransaction/:id/", c.Update)
	h.Delete("/deletetransaction/:id", c.Delete)
	h.Post("/checkout/:id/", c.Checkout)
}

func (c *transactionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateTransactionRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Successfully added a new transaction", res))
}

func (c *transactionController) List(ctx *fiber.Ctx) error {
	var req dto.ListTransactionRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Transaction data retrieved successfully", res))
}

func (c *transactionController) Show(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "Transaction not found")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Transaction retrieved successfully", res))
}

// Update advances the transaction lifecycle. All body fields are optional overrides.
func (c *transactionController) Update(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "Transaction not found")
	if err != nil {
		return err
	}

	var req dto.UpdateTransactionRequest
	if len(ctx.Body()) > 0 {
		if err := parseBody(ctx, &req); err != nil {
			return err
		}
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Successfully update", res))
}

func (c *transactionController) Delete(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "Transaction not found")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Transaction deleted successfully", nil))
}

func (c *transactionController) Checkout(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "Transaction not found")
	if err != nil {
		return err
	}

	res, err := c.service.Checkout(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Checkout created", res))
}
