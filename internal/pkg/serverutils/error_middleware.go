package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"support-agent-be/internal/pkg/apperror"
)

// ErrorHandlerMiddleware converts errors bubbling out of controllers into
// JSON responses. UnknownTool stays a client error because the caller named
// the tool; storage and encoder failures are server-side.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := fiber.StatusInternalServerError
		switch apperror.KindOf(err) {
		case apperror.KindInvalidArgument, apperror.KindUnknownTool:
			status = fiber.StatusBadRequest
		case apperror.KindStorage:
			status = fiber.StatusInternalServerError
		case apperror.KindEncoderUnavailable:
			status = fiber.StatusServiceUnavailable
		}

		return ctx.Status(status).JSON(ErrorResponse(status, err.Error()))
	}
}
