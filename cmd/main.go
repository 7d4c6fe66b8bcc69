package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/OngTK/WeWork/config"
	"github.com/OngTK/WeWork/db"
	"github.com/OngTK/WeWork/internal/auth/handler"
	repo "github.com/OngTK/WeWork/internal/auth/repository/postgres"
	"github.com/OngTK/WeWork/internal/auth/service"
	"github.com/OngTK/WeWork/internal/auth/store"
	"github.com/OngTK/WeWork/internal/mailer"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := db.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	employeeRepo := repo.NewPostgresEmployeeRepository(dbPool)
	tokenStore := store.NewRedisStore(redisClient)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	smtpMailer := mailer.NewSMTPMailer(cfg)

	authService := service.NewAuthService(employeeRepo, tokenStore, tokenService, cfg, logger)
	adminService := service.NewAdminService(employeeRepo, tokenStore, logger)
	resetService := service.NewPasswordResetService(employeeRepo, tokenStore, smtpMailer, adminService, cfg, logger)
	signUpService := service.NewSignUpService(employeeRepo)

	authHandler := handler.NewAuthHandler(authService, signUpService)
	adminHandler := handler.NewAdminHandler(adminService)
	resetHandler := handler.NewPasswordResetHandler(resetService, logger)
	mw := handler.NewMiddleware(authService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, resetHandler, adminHandler, mw)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
