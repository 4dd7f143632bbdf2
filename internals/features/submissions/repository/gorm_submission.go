package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"

	"studyhard_backend/internals/features/submissions/model"
	helper "studyhard_backend/internals/helpers"
)

// SubmissionRow: representasi tabel submissions (postgres).
type SubmissionRow struct {
	ID          string     `gorm:"type:varchar(24);primaryKey"`
	SubmitID    string     `gorm:"type:varchar(64);not null;index"`
	Examinee    string     `gorm:"type:varchar(254);not null;index"`
	DocLink     string     `gorm:"type:text"`
	Note        string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(16);not null;default:pending;index"`
	ObtainMarks *float64   `gorm:"column:obtainmarks"`
	Feedback    *string    `gorm:"type:text"`
	GradedBy    string     `gorm:"type:varchar(254)"`
	GradedAt    *time.Time `gorm:"column:graded_at"`
	SubmittedAt time.Time  `gorm:"not null"`
}

func (SubmissionRow) TableName() string { return "submissions" }

func submissionToRow(s *model.Submission) SubmissionRow {
	return SubmissionRow{
		ID:          s.ID.Hex(),
		SubmitID:    s.SubmitID,
		Examinee:    s.Examinee,
		DocLink:     s.DocLink,
		Note:        s.Note,
		Status:      s.Status,
		ObtainMarks: s.ObtainMarks,
		Feedback:    s.Feedback,
		GradedBy:    s.GradedBy,
		GradedAt:    s.GradedAt,
		SubmittedAt: s.SubmittedAt,
	}
}

func (row SubmissionRow) toModel() (model.Submission, error) {
	id, err := primitive.ObjectIDFromHex(row.ID)
	if err != nil {
		return model.Submission{}, fmt.Errorf("corrupt submission id %q: %w", row.ID, err)
	}
	s := model.Submission{
		ID:          id,
		SubmitID:    row.SubmitID,
		Examinee:    row.Examinee,
		DocLink:     row.DocLink,
		Note:        row.Note,
		Status:      row.Status,
		ObtainMarks: row.ObtainMarks,
		Feedback:    row.Feedback,
		GradedBy:    row.GradedBy,
		SubmittedAt: row.SubmittedAt.UTC(),
	}
	if row.GradedAt != nil {
		t := row.GradedAt.UTC()
		s.GradedAt = &t
	}
	return s, nil
}

type GormSubmissions struct {
	DB *gorm.DB
}

func NewGormSubmissions(db *gorm.DB) *GormSubmissions {
	return &GormSubmissions{DB: db}
}

func (r *GormSubmissions) Migrate(ctx context.Context) error {
	return r.DB.WithContext(ctx).AutoMigrate(&SubmissionRow{})
}

func (r *GormSubmissions) List(ctx context.Context, f model.SubmissionFilter) ([]model.Submission, error) {
	q := r.DB.WithContext(ctx).Model(&SubmissionRow{})
	if f.Examinee != "" {
		q = q.Where("examinee = ?", f.Examinee)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var rows []SubmissionRow
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	out := make([]model.Submission, 0, len(rows))
	for _, row := range rows {
		s, err := row.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *GormSubmissions) Create(ctx context.Context, s *model.Submission) error {
	row := submissionToRow(s)
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

func (r *GormSubmissions) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Submission, error) {
	var row SubmissionRow
	err := r.DB.WithContext(ctx).Where("id = ?", id.Hex()).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find submission: %w", err)
	}
	s, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormSubmissions) Grade(ctx context.Context, id primitive.ObjectID, g model.Grade) (helper.UpdateResult, error) {
	res := r.DB.WithContext(ctx).
		Model(&SubmissionRow{}).
		Where("id = ? AND status <> ?", id.Hex(), model.StatusCompleted).
		Where("(obtainmarks IS DISTINCT FROM ? OR feedback IS DISTINCT FROM ? OR status <> ?)",
			g.ObtainMarks, g.Feedback, g.Status).
		Updates(map[string]any{
			"obtainmarks": g.ObtainMarks,
			"feedback":    g.Feedback,
			"status":      g.Status,
			"graded_by":   g.GradedBy,
			"graded_at":   g.GradedAt,
		})
	if res.Error != nil {
		return helper.UpdateResult{}, fmt.Errorf("grade submission: %w", res.Error)
	}
	return helper.UpdateResult{MatchedCount: res.RowsAffected, ModifiedCount: res.RowsAffected}, nil
}
