package handler

import (
	"github.com/OngTK/WeWork/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, auth *AuthHandler, reset *PasswordResetHandler,
	admin *AdminHandler, mw *Middleware) {
	api := app.Group("/api")

	api.Post("/auth/signup", auth.SignUp)
	api.Post("/auth/login", auth.Login)
	api.Post("/auth/logout", auth.Logout)
	api.Post("/auth/token", auth.Reissue)

	api.Post("/auth/password/reset", reset.RequestReset)
	api.Post("/auth/password/reset/verify", reset.VerifyOTP)
	api.Post("/auth/password/reset/confirm", reset.ResetPassword)

	api.Get("/auth/me", mw.RequireAuth(), auth.Me)

	// Admin-only endpoints
	adminGroup := api.Group("/admin", mw.RequireAuth(), mw.RequireRole(constant.RoleAdmin))
	adminGroup.Post("/force-logout", admin.ForceLogout)
	adminGroup.Post("/lock", admin.LockAccount)
}
