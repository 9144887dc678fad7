package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studenthub-core/internal/domain/entity"
)

// writeError maps a use case error to its HTTP status and a generic message.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entity.ErrValidationFailed):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, entity.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no data found"})
	case errors.Is(err, entity.ErrUpstreamUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "AI service unavailable"})
	case errors.Is(err, entity.ErrUpstreamMalformed):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "unexpected AI response format"})
	case errors.Is(err, entity.ErrExtractionFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": entity.ErrExtractionFailed.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
