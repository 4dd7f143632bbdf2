package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studyhard_backend/internals/features/submissions/dto"
	"studyhard_backend/internals/features/submissions/model"
	"studyhard_backend/internals/features/submissions/repository"
	"studyhard_backend/internals/features/submissions/service"
	helper "studyhard_backend/internals/helpers"
	helperAuth "studyhard_backend/internals/helpers/auth"
)

type SubmissionController struct {
	Repo      repository.SubmissionRepository
	Decorator *service.Decorator
	Validator *validator.Validate
}

func NewSubmissionController(repo repository.SubmissionRepository, assignments service.AssignmentLookup) *SubmissionController {
	return &SubmissionController{
		Repo:      repo,
		Decorator: service.NewDecorator(assignments),
		Validator: helper.NewValidator(),
	}
}

// =========================
// POST /submissions
// =========================
func (ctrl *SubmissionController) Create(c *fiber.Ctx) error {
	id, err := helperAuth.GetIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	s := req.ToModel(id.Email, time.Now().UTC())
	if err := ctrl.Repo.Create(c.UserContext(), s); err != nil {
		log.Error().Err(err).Msg("create submission")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create submission")
	}
	return helper.JsonCreated(c, "Submission created", helper.InsertResult{InsertedID: s.ID.Hex()})
}

// =========================
// GET /submission
// =========================
func (ctrl *SubmissionController) List(c *fiber.Ctx) error {
	items, err := ctrl.Repo.List(c.UserContext(), model.SubmissionFilter{})
	if err != nil {
		log.Error().Err(err).Msg("list submissions")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}
	return helper.JsonList(c, "ok", items)
}

// =========================
// GET /submission/:id (kosong → data null)
// =========================
func (ctrl *SubmissionController) GetByID(c *fiber.Ctx) error {
	oid, err := helper.ParseObjectID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	s, err := ctrl.Repo.FindByID(c.UserContext(), oid)
	if errors.Is(err, helper.ErrRecordNotFound) {
		return helper.JsonOK(c, "ok", nil)
	}
	if err != nil {
		log.Error().Err(err).Msg("find submission")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch submission")
	}
	return helper.JsonOK(c, "ok", s)
}

// =========================
// PUT /submission/:id (grade, bukan milik sendiri)
// =========================
func (ctrl *SubmissionController) Grade(c *fiber.Ctx) error {
	id, err := helperAuth.GetIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	oid, err := helper.ParseObjectID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// penilai dicek sebelum isi body: penilaian diri sendiri selalu 403
	s, err := ctrl.Repo.FindByID(c.UserContext(), oid)
	if errors.Is(err, helper.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
	}
	if err != nil {
		log.Error().Err(err).Msg("find submission for grading")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update submission")
	}
	if helperAuth.SameEmail(s.Examinee, id.Email) {
		return helper.JsonError(c, fiber.StatusForbidden, "You can't mark your own submission.")
	}
	if s.Status == model.StatusCompleted {
		return helper.JsonError(c, fiber.StatusConflict, "Submission already graded")
	}

	var req dto.GradeSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.ObtainMarks == nil {
		return helper.JsonValidationError(c, map[string][]string{"obtainmarks": {"required"}})
	}
	if limit, ok := ctrl.maxMarks(c, s.SubmitID); ok && *req.ObtainMarks > limit {
		return helper.JsonValidationError(c, map[string][]string{"obtainmarks": {"lte"}})
	}

	res, err := ctrl.Repo.Grade(c.UserContext(), oid, req.ToGrade(id.Email, time.Now().UTC()))
	if err != nil {
		log.Error().Err(err).Msg("grade submission")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update submission")
	}
	if res.ModifiedCount != 1 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Failed to update submission")
	}
	return helper.JsonUpdated(c, "Submission updated successfully", res)
}

// =========================
// GET /mysubmission?email=
// =========================
func (ctrl *SubmissionController) ListMine(c *fiber.Ctx) error {
	id, err := helperAuth.GetIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		email = id.Email
	}
	if !helperAuth.SameEmail(email, id.Email) {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden access")
	}

	items, err := ctrl.Repo.List(c.UserContext(), model.SubmissionFilter{Examinee: strings.ToLower(email)})
	if err != nil {
		log.Error().Err(err).Msg("list my submissions")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}
	return helper.JsonList(c, "ok", ctrl.Decorator.Decorate(c.UserContext(), items))
}

// =========================
// GET /pending-assignments
// =========================
func (ctrl *SubmissionController) ListPending(c *fiber.Ctx) error {
	items, err := ctrl.Repo.List(c.UserContext(), model.SubmissionFilter{Status: model.StatusPending})
	if err != nil {
		log.Error().Err(err).Msg("list pending submissions")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch submissions")
	}
	return helper.JsonList(c, "ok", ctrl.Decorator.Decorate(c.UserContext(), items))
}

// maxMarks: nilai maksimum assignment bila bisa ditemukan.
func (ctrl *SubmissionController) maxMarks(c *fiber.Ctx, submitID string) (float64, bool) {
	oid, err := primitive.ObjectIDFromHex(submitID)
	if err != nil {
		return 0, false
	}
	a, err := ctrl.Decorator.Assignments.FindByID(c.UserContext(), oid)
	if err != nil || a.Marks <= 0 {
		return 0, false
	}
	return a.Marks, true
}
