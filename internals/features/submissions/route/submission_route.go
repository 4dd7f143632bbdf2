package route

import (
	"github.com/gofiber/fiber/v2"

	subCtrl "studyhard_backend/internals/features/submissions/controller"
	"studyhard_backend/internals/features/submissions/repository"
	"studyhard_backend/internals/features/submissions/service"
)

// SubmissionRoutes: semua route submission di belakang gate.
func SubmissionRoutes(r fiber.Router, repo repository.SubmissionRepository, assignments service.AssignmentLookup, gate fiber.Handler) {
	ctrl := subCtrl.NewSubmissionController(repo, assignments)

	r.Post("/submissions", gate, ctrl.Create)
	r.Get("/submission", gate, ctrl.List)
	r.Get("/submission/:id", gate, ctrl.GetByID)
	r.Put("/submission/:id", gate, ctrl.Grade)
	r.Get("/mysubmission", gate, ctrl.ListMine)
	r.Get("/pending-assignments", gate, ctrl.ListPending)
}
