package serverutils

import (
	"errors"

	"event-management-be/internal/pkg/apperror"
	"event-management-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const internalErrorMessage = "An error occurred while processing your request"

// ErrorHandlerMiddleware turns errors returned by handlers into the response envelope.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	handle := ErrorHandler(log)
	return func(ctx *fiber.Ctx) error {
		if err := ctx.Next(); err != nil {
			return handle(ctx, err)
		}
		return nil
	}
}

// ErrorHandler is also installed as fiber's ErrorHandler for errors raised outside the middleware chain.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Kind != apperror.KindInternal {
			res := ErrorResponse(appErr.Message)
			res.Errors = appErr.Fields
			return ctx.Status(appErr.StatusCode()).JSON(res)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		// The cause is passed through to the caller.
		if log != nil {
			log.Error("HTTP", "Unhandled error", map[string]interface{}{
				"error":  err.Error(),
				"method": ctx.Method(),
				"path":   ctx.Path(),
			})
		}
		res := ErrorResponse(internalErrorMessage)
		res.Error = err.Error()
		return ctx.Status(fiber.StatusInternalServerError).JSON(res)
	}
}
