package api

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"studenthub-core/internal/domain/entity"
)

type Authenticator interface {
	Login(ctx context.Context, phone string) error
	Verify(ctx context.Context, phone, otp string, location *string) (*entity.User, error)
}

type AuthHandler struct {
	auth Authenticator
}

func NewAuthHandler(a Authenticator) *AuthHandler {
	return &AuthHandler{auth: a}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req entity.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.auth.Login(c.UserContext(), req.Phone); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "OTP sent"})
}

func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	var req entity.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	user, err := h.auth.Verify(c.UserContext(), req.Phone, req.OTP.String(), req.Location)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "OTP verified",
		"user":    user,
	})
}
