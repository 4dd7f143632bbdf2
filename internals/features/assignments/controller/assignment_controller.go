package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"studyhard_backend/internals/features/assignments/dto"
	"studyhard_backend/internals/features/assignments/model"
	"studyhard_backend/internals/features/assignments/repository"
	helper "studyhard_backend/internals/helpers"
	helperAuth "studyhard_backend/internals/helpers/auth"
)

type AssignmentController struct {
	Repo      repository.AssignmentRepository
	Validator *validator.Validate
}

func NewAssignmentController(repo repository.AssignmentRepository) *AssignmentController {
	return &AssignmentController{Repo: repo, Validator: helper.NewValidator()}
}

// =========================
// GET /assignments?difficulty=
// =========================
func (ctrl *AssignmentController) List(c *fiber.Ctx) error {
	f := model.AssignmentFilter{
		Difficulty: strings.ToLower(strings.TrimSpace(c.Query("difficulty"))),
	}
	items, err := ctrl.Repo.List(c.UserContext(), f)
	if err != nil {
		log.Error().Err(err).Msg("list assignments")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assignments")
	}
	return helper.JsonList(c, "ok", items)
}

// =========================
// POST /assignments
// =========================
func (ctrl *AssignmentController) Create(c *fiber.Ctx) error {
	id, err := helperAuth.GetIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Email != "" && !helperAuth.SameEmail(req.Email, id.Email) {
		log.Warn().Str("body_email", req.Email).Str("caller", id.Email).Msg("assignment owner overridden by caller identity")
	}

	extra, err := bodyExtras(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	a, err := req.ToModel(id.Email, time.Now().UTC(), extra)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.Repo.Create(c.UserContext(), a); err != nil {
		log.Error().Err(err).Msg("create assignment")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create assignment")
	}

	return helper.JsonCreated(c, "Assignment created", helper.InsertResult{InsertedID: a.ID.Hex()})
}

// =========================
// GET /assignments/:id
// =========================
func (ctrl *AssignmentController) GetByID(c *fiber.Ctx) error {
	oid, err := helper.ParseObjectID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	a, err := ctrl.Repo.FindByID(c.UserContext(), oid)
	if errors.Is(err, helper.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	if err != nil {
		log.Error().Err(err).Msg("find assignment")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Server error while fetching assignment")
	}
	return helper.JsonOK(c, "ok", a)
}

// =========================
// PUT /assignments/:id (owner only)
// =========================
func (ctrl *AssignmentController) Update(c *fiber.Ctx) error {
	id, err := helperAuth.GetIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	oid, err := helper.ParseObjectID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// kepemilikan dicek sebelum isi body
	existing, err := ctrl.Repo.FindByID(c.UserContext(), oid)
	if errors.Is(err, helper.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
	}
	if err != nil {
		log.Error().Err(err).Msg("find assignment for update")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update assignment")
	}
	if !helperAuth.SameEmail(existing.Email, id.Email) {
		return helper.JsonError(c, fiber.StatusForbidden, "Permission denied")
	}

	var req dto.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	extra, err := bodyExtras(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	patch, err := req.ToPatch(extra)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if patch.IsEmpty() {
		return helper.JsonError(c, fiber.StatusBadRequest, "No updatable fields supplied")
	}

	res, err := ctrl.Repo.Update(c.UserContext(), oid, patch)
	if err != nil {
		log.Error().Err(err).Msg("update assignment")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update assignment")
	}
	return helper.JsonUpdated(c, "Assignment updated", res)
}

// =========================
// DELETE /assignments/:id (owner only)
// =========================
func (ctrl *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := helperAuth.GetIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	oid, err := helper.ParseObjectID(c.Params("id"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	n, err := ctrl.Repo.DeleteOwned(c.UserContext(), oid, strings.ToLower(id.Email))
	if err != nil {
		log.Error().Err(err).Msg("delete assignment")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete assignment")
	}
	// tidak ada & bukan pemilik sengaja tidak dibedakan
	if n != 1 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found or not permitted")
	}
	return helper.JsonDeleted(c, "Assignment deleted", fiber.Map{"deletedCount": n})
}

// bodyExtras: field JSON di luar skema assignment, disimpan apa adanya.
func bodyExtras(c *fiber.Ctx) (map[string]any, error) {
	if !c.Is("json") || len(c.Body()) == 0 {
		return nil, nil
	}
	var body map[string]any
	if err := c.App().Config().JSONDecoder(c.Body(), &body); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	extra, invalid := model.ExtraFields(body)
	if len(invalid) > 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid field name: "+strings.Join(invalid, ", "))
	}
	return extra, nil
}
