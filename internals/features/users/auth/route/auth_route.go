package route

import (
	"github.com/gofiber/fiber/v2"

	authController "studyhard_backend/internals/features/users/auth/controller"
)

// AuthRoutes: /jwt & /logout publik, /me di belakang gate.
func AuthRoutes(r fiber.Router, ctrl *authController.AuthController, sessionLimiter, gate fiber.Handler) {
	r.Post("/jwt", sessionLimiter, ctrl.IssueToken)
	r.Post("/logout", ctrl.Logout)
	r.Get("/me", gate, ctrl.Me)
}
