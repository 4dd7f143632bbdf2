package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "studyhard_backend/internals/helpers"
)

// Global limiter: untuk semua endpoint biasa
func GlobalRateLimiter(perMinute int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        orDefault(perMinute, 100),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return clientIP(c)
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, "Too many requests, please try again later")
		},
	})
}

// Rate limiter untuk penerbitan sesi (lebih ketat)
func SessionRateLimiter(perMinute int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        orDefault(perMinute, 10),
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "session:" + clientIP(c)
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, "Too many login attempts, please wait a moment")
		},
	})
}

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

// clientIP: ProxyHeader kosong (tanpa reverse proxy) → alamat TCP langsung.
func clientIP(c *fiber.Ctx) string {
	if ip := c.IP(); ip != "" {
		return ip
	}
	return c.Context().RemoteIP().String()
}
