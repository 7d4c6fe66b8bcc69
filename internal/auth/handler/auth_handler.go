package handler

import (
	"errors"
	"strings"

	"github.com/OngTK/WeWork/internal/auth/dto"
	"github.com/OngTK/WeWork/internal/auth/service"
	autherror "github.com/OngTK/WeWork/internal/errors"
	"github.com/OngTK/WeWork/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService   *service.AuthService
	signUpService *service.SignUpService
}

func NewAuthHandler(authService *service.AuthService, signUpService *service.SignUpService) *AuthHandler {
	return &AuthHandler{authService: authService, signUpService: signUpService}
}

// bearerToken extracts the raw token from an Authorization: Bearer header.
func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var input dto.SignUpInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	resp, err := h.signUpService.SignUp(c.Context(), input)
	if err != nil {
		if errors.Is(err, autherror.ErrLoginIDTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "login id already in use"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	result, err := h.authService.Login(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, autherror.ErrTooManyLoginAttempts):
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many login attempts"})
		case errors.Is(err, autherror.ErrInvalidCredentials), errors.Is(err, autherror.ErrEmployeeInactive):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}
	}

	setRefreshCookie(c, result.RefreshToken, result.RefreshTTL)

	return c.Status(fiber.StatusOK).JSON(result.Body)
}

// Logout always clears the cookie and answers 200; a missing or broken
// refresh token counts as already logged out.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	refresh := c.Cookies(constant.RefreshCookieName)
	access := bearerToken(c)

	if err := h.authService.Logout(c.Context(), refresh, access); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	clearRefreshCookie(c)

	return c.SendStatus(fiber.StatusOK)
}

func (h *AuthHandler) Reissue(c *fiber.Ctx) error {
	refresh := c.Cookies(constant.RefreshCookieName)
	if refresh == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "refresh cookie not found"})
	}

	result, err := h.authService.Reissue(c.Context(), refresh)
	if err != nil {
		if errors.Is(err, autherror.ErrInvalidRefresh) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid refresh token"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}

	setRefreshCookie(c, result.RefreshToken, result.RefreshTTL)

	return c.Status(fiber.StatusOK).JSON(result.Body)
}

// Me returns the authenticated employee's summary; it exists for the
// frontend session bootstrap and exercises the auth middleware.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	emp := employeeFromCtx(c)
	if emp == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	return c.Status(fiber.StatusOK).JSON(dto.UserSummary{
		EmpID:   emp.EmpID,
		LoginID: emp.LoginID,
		Name:    emp.Name,
		Roles:   emp.Roles(),
	})
}
