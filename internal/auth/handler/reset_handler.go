package handler

import (
	"errors"
	"log/slog"

	"github.com/OngTK/WeWork/internal/auth/dto"
	"github.com/OngTK/WeWork/internal/auth/service"
	autherror "github.com/OngTK/WeWork/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type PasswordResetHandler struct {
	resetService *service.PasswordResetService
	logger       *slog.Logger
}

func NewPasswordResetHandler(resetService *service.PasswordResetService, logger *slog.Logger) *PasswordResetHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &PasswordResetHandler{resetService: resetService, logger: logger}
}

// RequestReset answers 200 for unknown login ids too, so the endpoint does
// not reveal which accounts exist.
func (h *PasswordResetHandler) RequestReset(c *fiber.Ctx) error {
	var input dto.PasswordResetRequestInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.resetService.RequestReset(c.Context(), input.LoginID); err != nil {
		if errors.Is(err, autherror.ErrEmployeeNotFound) {
			h.logger.Info("password reset requested for unknown login id", "loginId", input.LoginID)
			return c.SendStatus(fiber.StatusOK)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *PasswordResetHandler) VerifyOTP(c *fiber.Ctx) error {
	var input dto.OtpVerifyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	resp, err := h.resetService.VerifyOTP(c.Context(), input.LoginID, input.OTP)
	if err != nil {
		if errors.Is(err, autherror.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired code"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *PasswordResetHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.resetService.ResetPassword(c.Context(), input); err != nil {
		switch {
		case errors.Is(err, autherror.ErrForbidden),
			errors.Is(err, autherror.ErrEmployeeNotFound),
			errors.Is(err, autherror.ErrPasswordReused):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "password reset rejected"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}
	}

	return c.SendStatus(fiber.StatusOK)
}
