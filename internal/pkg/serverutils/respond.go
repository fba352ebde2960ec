package serverutils

import (
	"errors"

	"ai-tutoring-be/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// Success writes the standard response envelope with a payload.
func Success(ctx *fiber.Ctx, status int, message string, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": true,
		"code":    status,
		"message": message,
		"data":    data,
	})
}

// Fail writes the standard response envelope for a failed request.
func Fail(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"code":    status,
		"message": message,
	})
}

// FromError maps a service error to the standard envelope. Domain errors
// keep their message; anything unrecognized becomes an opaque 500.
func FromError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return Fail(ctx, fiber.StatusNotFound, err.Error())
	case errors.Is(err, apperror.ErrNotAuthorized):
		return Fail(ctx, fiber.StatusForbidden, err.Error())
	case errors.Is(err, apperror.ErrConflict):
		return Fail(ctx, fiber.StatusConflict, err.Error())
	case errors.Is(err, apperror.ErrUpstreamUnavailable):
		return Fail(ctx, fiber.StatusBadGateway, err.Error())
	case errors.Is(err, apperror.ErrInvalidInput):
		return Fail(ctx, fiber.StatusBadRequest, err.Error())
	default:
		return Fail(ctx, fiber.StatusInternalServerError, "Internal server error")
	}
}
