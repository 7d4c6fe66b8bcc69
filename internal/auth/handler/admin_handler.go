package handler

import (
	"errors"

	"github.com/OngTK/WeWork/internal/auth/dto"
	"github.com/OngTK/WeWork/internal/auth/service"
	autherror "github.com/OngTK/WeWork/internal/errors"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	adminService *service.AdminService
}

func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) ForceLogout(c *fiber.Ctx) error {
	var input dto.ForceLogoutInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.adminService.ForceLogout(c.Context(), input.EmpID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *AdminHandler) LockAccount(c *fiber.Ctx) error {
	var input dto.LockAccountInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.adminService.LockAccount(c.Context(), input.EmpID); err != nil {
		if errors.Is(err, autherror.ErrEmployeeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "employee not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.SendStatus(fiber.StatusOK)
}
