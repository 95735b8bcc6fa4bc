package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"noteboard/internal/logs"
	"noteboard/internal/store"
)

// FiberServer serves a note store over the /notes JSON API.
type FiberServer struct {
	*fiber.App

	store store.Store
}

func New(s store.Store) *FiberServer {
	server := &FiberServer{
		App: fiber.New(fiber.Config{
			ServerHeader:          "notesd",
			AppName:               "notesd",
			DisableStartupMessage: true,
			ErrorHandler:          errorHandler,
		}),
		store: s,
	}
	server.App.Use(requestid.New())
	server.App.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-Id",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		MaxAge:       3600,
	}))
	server.App.Use(logger.New(logger.Config{
		Format: "${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		Output: logs.Logger.Writer(),
	}))
	return server
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code >= fiber.StatusInternalServerError {
		logs.Logger.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
