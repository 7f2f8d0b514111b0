package controller

import (
	"event-management-be/internal/dto"
	"event-management-be/internal/pkg/serverutils"
	"event-management-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IArticleController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type articleController struct {
	service service.IArticleService
}

func NewArticleController(service service.IArticleService) IArticleController {
	return &articleController{service: service}
}

func (c *articleController) RegisterRoutes(r fiber.Router) {
	r.Post("/article/createarticle", c.Create)
	r.Get("/article/", c.List)
	// "aticle" is the path existing clients call.
	r.Get("/aticle/detailarticle/:id/", c.Show)
	r.Post("/aticle/updatearticle/:id/", c.Update)
	r.Delete("/article/deletearticle/:id", c.Delete)
}

func (c *articleController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateArticleRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Successfully added a new article", res))
}

func (c *articleController) List(ctx *fiber.Ctx) error {
	var req dto.ListArticleRequest
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
	return ctx.JSON(serverutils.SuccessResponse("article retrieved successfully", res))
}

func (c *articleController) Show(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "article not found")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("article retrieved successfully", res))
}

func (c *articleController) Update(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "article not found")
	if err != nil {
		return err
	}

	var req dto.UpdateArticleRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Successfully updated a new article", res))
}

func (c *articleController) Delete(ctx *fiber.Ctx) error {
	id, err := idParam(ctx, "article not found")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("article deleted successfully", nil))
}
