package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Submission: jawaban examinee atas satu assignment (SubmitID, referensi longgar).
// ObtainMarks & Feedback nil sampai dinilai.
type Submission struct {
	ID          primitive.ObjectID `json:"_id"                  bson:"_id"`
	SubmitID    string             `json:"submit_id"            bson:"submit_id"`
	Examinee    string             `json:"examinee"             bson:"examinee"`
	DocLink     string             `json:"doc_link,omitempty"   bson:"doc_link,omitempty"`
	Note        string             `json:"note,omitempty"       bson:"note,omitempty"`
	Status      string             `json:"status"               bson:"status"`
	ObtainMarks *float64           `json:"obtainmarks"          bson:"obtainmarks"`
	Feedback    *string            `json:"feedback"             bson:"feedback"`
	GradedBy    string             `json:"graded_by,omitempty"  bson:"graded_by,omitempty"`
	GradedAt    *time.Time         `json:"graded_at,omitempty"  bson:"graded_at,omitempty"`
	SubmittedAt time.Time          `json:"submitted_at"         bson:"submitted_at"`
}

type SubmissionFilter struct {
	Examinee string
	Status   string
}

// Grade: field yang ditulis operasi penilaian.
type Grade struct {
	ObtainMarks float64
	Feedback    string
	Status      string
	GradedBy    string
	GradedAt    time.Time
}

// Changes: true jika grade mengubah salah satu field penilaian.
func (g Grade) Changes(s *Submission) bool {
	if s.Status != g.Status {
		return true
	}
	if s.ObtainMarks == nil || *s.ObtainMarks != g.ObtainMarks {
		return true
	}
	return s.Feedback == nil || *s.Feedback != g.Feedback
}

func (g Grade) Apply(s *Submission) {
	marks, feedback, at := g.ObtainMarks, g.Feedback, g.GradedAt
	s.ObtainMarks = &marks
	s.Feedback = &feedback
	s.Status = g.Status
	s.GradedBy = g.GradedBy
	s.GradedAt = &at
}

// DecoratedSubmission: submission + title & marks maksimum dari assignment-nya.
// Title/Marks kosong bila assignment tidak ditemukan.
type DecoratedSubmission struct {
	Submission
	Title *string  `json:"title,omitempty"`
	Marks *float64 `json:"marks,omitempty"`
}
