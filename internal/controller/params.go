package controller

import (
	"mime/multipart"

	"event-management-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// idParam reads the :id route parameter. Ids that cannot exist answer like missing records.
func idParam(ctx *fiber.Ctx, notFound string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return uuid.Nil, apperror.NewNotFoundError(notFound)
	}
	return id, nil
}

// optionalImage returns the uploaded image or nil when the request carries none.
func optionalImage(ctx *fiber.Ctx) *multipart.FileHeader {
	file, err := ctx.FormFile("image")
	if err != nil {
		return nil
	}
	return file
}

func parseBody(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return nil
}
