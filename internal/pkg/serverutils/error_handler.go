package serverutils

import (
	"errors"

	"ai-tutoring-be/internal/service"
	"ai-tutoring-be/pkg/lesson/template"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps domain errors onto HTTP statuses. Persistence
// conflicts are marked retryable so the UI can re-submit instead of showing
// false success.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		switch {
		case errors.Is(err, template.ErrTemplateNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, service.ErrPersistenceConflict):
			ctx.Set("Retry-After", "1")
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse("temporary conflict, please retry"))
		case errors.Is(err, service.ErrPersistenceUnavailable):
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse("storage unavailable, completion not recorded"))
		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
		}
	}
}
