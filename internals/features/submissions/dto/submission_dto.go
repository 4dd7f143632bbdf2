package dto

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"studyhard_backend/internals/features/submissions/model"
)

/* =========================================================
   CREATE
========================================================= */

// CreateSubmissionRequest: Examinee diabaikan, selalu diisi dari identity pemanggil.
type CreateSubmissionRequest struct {
	SubmitID string `json:"submit_id" validate:"required,max=64"`
	Examinee string `json:"examinee"  validate:"omitempty"`
	DocLink  string `json:"doc_link"  validate:"omitempty,url,max=2048"`
	Note     string `json:"note"      validate:"omitempty,max=5000"`
	Status   string `json:"status"    validate:"omitempty,oneof=pending completed"`
}

func (r *CreateSubmissionRequest) Normalize() {
	r.SubmitID = strings.TrimSpace(r.SubmitID)
	r.DocLink = strings.TrimSpace(r.DocLink)
	r.Note = strings.TrimSpace(r.Note)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Status == "" {
		r.Status = model.StatusPending
	}
}

func (r CreateSubmissionRequest) ToModel(examinee string, now time.Time) *model.Submission {
	return &model.Submission{
		ID:          primitive.NewObjectID(),
		SubmitID:    r.SubmitID,
		Examinee:    strings.ToLower(strings.TrimSpace(examinee)),
		DocLink:     r.DocLink,
		Note:        r.Note,
		Status:      r.Status,
		SubmittedAt: now,
	}
}

/* =========================================================
   GRADE
========================================================= */

// GradeSubmissionRequest: "marks" diterima sebagai alias lama dari "obtainmarks".
type GradeSubmissionRequest struct {
	ObtainMarks *float64 `json:"obtainmarks" validate:"omitempty,gte=0"`
	Marks       *float64 `json:"marks"       validate:"omitempty,gte=0"`
	Feedback    string   `json:"feedback"    validate:"omitempty,max=5000"`
	Status      string   `json:"status"      validate:"omitempty,oneof=pending completed"`
}

func (r *GradeSubmissionRequest) Normalize() {
	if r.ObtainMarks == nil && r.Marks != nil {
		r.ObtainMarks = r.Marks
	}
	r.Feedback = strings.TrimSpace(r.Feedback)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	if r.Status == "" {
		r.Status = model.StatusCompleted
	}
}

func (r GradeSubmissionRequest) ToGrade(grader string, now time.Time) model.Grade {
	var marks float64
	if r.ObtainMarks != nil {
		marks = *r.ObtainMarks
	}
	return model.Grade{
		ObtainMarks: marks,
		Feedback:    r.Feedback,
		Status:      r.Status,
		GradedBy:    strings.ToLower(strings.TrimSpace(grader)),
		GradedAt:    now,
	}
}
