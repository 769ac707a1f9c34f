package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/caioaraujo/grana/internal/api"
	"github.com/caioaraujo/grana/internal/auth"
	"github.com/caioaraujo/grana/internal/config"
	"github.com/caioaraujo/grana/internal/db"
	"github.com/caioaraujo/grana/internal/logging"
	"github.com/caioaraujo/grana/internal/metrics"
)

const tokenTTL = 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	location := mustLoadLocation(cfg.Timezone)
	time.Local = location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("database init failed", "error", err)
		os.Exit(1)
	}

	repos := db.NewRepositories(database)
	tokens := auth.NewTokenManager(cfg.SecretKey, tokenTTL)
	handler := api.NewHandler(repos, tokens, location)

	if err := handler.AdminService().EnsureMasterAccount(cfg.MasterUsername, cfg.MasterPassword); err != nil {
		slog.Error("master account bootstrap failed", "error", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Grana",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New())
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("grana listening", "port", cfg.Port, "db", cfg.DBPath, "tz", location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("invalid TZ, falling back to UTC", "tz", name)
		return time.UTC
	}
	return location
}
