// Package server assembles the Fiber application.
package server

import (
	"mergington-activities/config"
	"mergington-activities/internal/api"
	"mergington-activities/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// IndexPath is where "/" redirects to.
const IndexPath = "/static/index.html"

// New builds the application with middlewares, service routes and handlers of si.
func New(log *zap.SugaredLogger, cfg config.HTTPConfig, si api.ServerInterface) *fiber.App {
	serv := fiber.New(fiber.Config{
		AppName:               "mergington-activities",
		ReadTimeout:           cfg.RequestTimeout,
		WriteTimeout:          cfg.RequestTimeout,
		UnescapePath:          true,
		Immutable:             true,
		DisableStartupMessage: true,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	serv.Use(middleware.RequestLogger(log))
	serv.Use(middleware.RequestMetrics())

	serv.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(IndexPath, fiber.StatusTemporaryRedirect)
	})
	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	serv.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	if cfg.StaticDir != "" {
		serv.Static("/static", cfg.StaticDir)
	}

	api.RegisterHandlers(serv, si)
	return serv
}
