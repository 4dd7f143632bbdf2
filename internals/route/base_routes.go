package routes

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/atomic"

	database "studyhard_backend/internals/databases"
)

var startTime = time.Now()

func BaseRoutes(app *fiber.App, stores *database.Stores, ready *atomic.Bool) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("study hard is started")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := stores.Ping(ctx); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"driver":         stores.Driver,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    os.Getenv("APP_ENV"),
		})
	})

	app.Get("/livez", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/readyz", func(c *fiber.Ctx) error {
		if ready != nil && !ready.Load() {
			return c.Status(fiber.StatusServiceUnavailable).SendString("not ready")
		}
		return c.SendString("ready")
	})
}
