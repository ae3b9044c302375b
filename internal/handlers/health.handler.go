package handlers

import (
	"context"
	"time"

	"clubmanager/internal/app"

	"github.com/gofiber/fiber/v2"
)

const healthTimeout = 2 * time.Second

func HealthHandler(router fiber.Router, app *app.App) {
	log := newHandler(*app, router, "health_handler").log.Function("health")

	router.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		if err := app.Database.Ping(ctx); err != nil {
			log.Er("database ping failed", err)
			return c.Status(fiber.StatusServiceUnavailable).
				JSON(fiber.Map{"message": "error", "error": "database unavailable"})
		}

		return c.JSON(fiber.Map{
			"message":     "success",
			"status":      "ok",
			"environment": app.Config.Environment,
			"clients":     app.Websocket.ClientCount(),
		})
	})
}
