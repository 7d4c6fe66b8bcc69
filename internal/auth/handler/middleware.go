package handler

import (
	"errors"

	"github.com/OngTK/WeWork/internal/auth/domain"
	"github.com/OngTK/WeWork/internal/auth/service"
	autherror "github.com/OngTK/WeWork/internal/errors"
	"github.com/gofiber/fiber/v2"
)

const (
	localEmployee = "employee"
	localClaims   = "claims"
)

type Middleware struct {
	authService *service.AuthService
}

func NewMiddleware(authService *service.AuthService) *Middleware {
	return &Middleware{authService: authService}
}

// RequireAuth gates every authenticated route: Bearer token, typ=access,
// not blacklisted, employee still active. Failures all answer a generic 401;
// the service logs the specific kind.
func (m *Middleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		emp, claims, err := m.authService.Authenticate(c.Context(), raw)
		if err != nil {
			if errors.Is(err, autherror.ErrInvalidToken) || errors.Is(err, autherror.ErrTokenRevoked) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
		}

		c.Locals(localEmployee, emp)
		c.Locals(localClaims, claims)

		return c.Next()
	}
}

// RequireRole gates a route on a role derived from the employee's position.
// Must run after RequireAuth.
func (m *Middleware) RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		emp := employeeFromCtx(c)
		if emp == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
		}

		for _, r := range emp.Roles() {
			if r == role {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
	}
}

func employeeFromCtx(c *fiber.Ctx) *domain.Employee {
	emp, _ := c.Locals(localEmployee).(*domain.Employee)
	return emp
}
