package route

import (
	"github.com/gofiber/fiber/v2"

	assignCtrl "studyhard_backend/internals/features/assignments/controller"
	"studyhard_backend/internals/features/assignments/repository"
)

// AssignmentRoutes: list publik, sisanya lewat gate.
func AssignmentRoutes(r fiber.Router, repo repository.AssignmentRepository, gate fiber.Handler) {
	ctrl := assignCtrl.NewAssignmentController(repo)

	g := r.Group("/assignments")
	g.Get("/", ctrl.List)
	g.Post("/", gate, ctrl.Create)
	g.Get("/:id", gate, ctrl.GetByID)
	g.Put("/:id", gate, ctrl.Update)
	g.Delete("/:id", gate, ctrl.Delete)
}
