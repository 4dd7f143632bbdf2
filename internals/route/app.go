package routes

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"studyhard_backend/internals/middlewares"
)

// NewApp merakit fiber app lengkap (config, middleware global, semua route).
func NewApp(d Deps) *fiber.App {
	fcfg := fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          middlewares.ErrorHandler,
		BodyLimit:             6 * 1024 * 1024, // thumbnail 5MB + overhead multipart
	}
	// X-Forwarded-For hanya dibaca dari proxy yang terdaftar; selain itu IP TCP
	if len(d.Config.TrustedProxies) > 0 {
		fcfg.ProxyHeader = fiber.HeaderXForwardedFor
		fcfg.EnableTrustedProxyCheck = true
		fcfg.TrustedProxies = d.Config.TrustedProxies
	}
	app := fiber.New(fcfg)

	middlewares.SetupMiddlewares(app, d.Config)
	SetupRoutes(app, d)
	return app
}
