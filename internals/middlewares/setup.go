package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"

	"studyhard_backend/internals/configs"
	"studyhard_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global sesuai urutan:
// recover → request-id → logger → compress → CORS → rate limiter.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestID(5 * time.Second))
	app.Use(logger.LoggerMiddleware())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(CorsMiddleware(cfg.CorsOrigins))
	app.Use(GlobalRateLimiter(cfg.RateLimit))
}
