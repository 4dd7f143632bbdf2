package dto

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"studyhard_backend/internals/features/assignments/model"
	helper "studyhard_backend/internals/helpers"
)

/* =========================================================
   CREATE
========================================================= */

// CreateAssignmentRequest: Email diabaikan, pemilik selalu identity pemanggil.
type CreateAssignmentRequest struct {
	Title       string  `json:"title"       validate:"required,max=200"`
	Description string  `json:"description" validate:"omitempty,max=5000"`
	Difficulty  string  `json:"difficulty"  validate:"required,oneof=easy medium hard"`
	Marks       float64 `json:"marks"       validate:"gte=0"`
	Email       string  `json:"email"       validate:"omitempty"`
	DueDate     string  `json:"due_date"    validate:"omitempty"`
	Thumbnail   string  `json:"thumbnail"   validate:"omitempty,max=2048"`
}

func (r *CreateAssignmentRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.DueDate = strings.TrimSpace(r.DueDate)
	r.Description = strings.TrimSpace(r.Description)
	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))
	r.Thumbnail = strings.TrimSpace(r.Thumbnail)
}

// ToModel: owner = email pemanggil (lowercase). due_date divalidasi tapi disimpan sesuai kiriman.
func (r CreateAssignmentRequest) ToModel(ownerEmail string, now time.Time, extra map[string]any) (*model.Assignment, error) {
	if _, err := helper.ParseDate("due_date", r.DueDate); err != nil {
		return nil, err
	}
	return &model.Assignment{
		ID:          primitive.NewObjectID(),
		Title:       r.Title,
		Description: r.Description,
		Difficulty:  r.Difficulty,
		Marks:       r.Marks,
		Email:       strings.ToLower(strings.TrimSpace(ownerEmail)),
		DueDate:     r.DueDate,
		Thumbnail:   r.Thumbnail,
		CreatedAt:   now,
		UpdatedAt:   now,
		Extra:       extra,
	}, nil
}

/* =========================================================
   UPDATE (partial)
========================================================= */

type UpdateAssignmentRequest struct {
	Title       *string  `json:"title"       validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Difficulty  *string  `json:"difficulty"  validate:"omitempty,oneof=easy medium hard"`
	Marks       *float64 `json:"marks"       validate:"omitempty,gte=0"`
	DueDate     *string  `json:"due_date"`
	Thumbnail   *string  `json:"thumbnail"   validate:"omitempty,max=2048"`
}

func (r *UpdateAssignmentRequest) Normalize() {
	trim := func(p *string) {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	trim(r.Title)
	trim(r.Description)
	trim(r.DueDate)
	trim(r.Thumbnail)
	if r.Difficulty != nil {
		*r.Difficulty = strings.ToLower(strings.TrimSpace(*r.Difficulty))
	}
}

func (r UpdateAssignmentRequest) ToPatch(extra map[string]any) (model.AssignmentUpdate, error) {
	patch := model.AssignmentUpdate{
		Title:       r.Title,
		Description: r.Description,
		Difficulty:  r.Difficulty,
		Marks:       r.Marks,
		DueDate:     r.DueDate,
		Thumbnail:   r.Thumbnail,
		Extra:       extra,
	}
	if r.DueDate != nil {
		if _, err := helper.ParseDate("due_date", *r.DueDate); err != nil {
			return patch, err
		}
	}
	return patch, nil
}
