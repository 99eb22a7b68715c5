// Package main provides the n8nlint validation API server.
package main

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"go.opentelemetry.io/otel/trace"

	"github.com/n8nlint/n8nlint/pkg/loader"
	"github.com/n8nlint/n8nlint/pkg/rules"
	"github.com/n8nlint/n8nlint/pkg/web"
)

type API struct {
	logger   *slog.Logger
	registry *rules.Registry
	tracer   trace.Tracer
}

func NewAPI(logger *slog.Logger, registry *rules.Registry, tracer trace.Tracer) *API {
	return &API{
		logger:   logger,
		registry: registry,
		tracer:   tracer,
	}
}

func (a *API) App() *fiber.App {
	handlers := web.NewAPIHandlers(
		loader.New(a.logger),
		rules.NewRunner(a.logger),
		a.registry,
		a.tracer,
	)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("n8nlint API")
	})

	app.Post("/validate", handlers.ValidateWorkflow)
	app.Get("/rules", handlers.GetRules)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	err := app.Listen(":" + strconv.Itoa(port))

	return err
}
