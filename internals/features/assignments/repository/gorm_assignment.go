package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"studyhard_backend/internals/features/assignments/model"
	helper "studyhard_backend/internals/helpers"
)

// AssignmentRow: representasi tabel assignments (postgres).
type AssignmentRow struct {
	ID          string            `gorm:"type:varchar(24);primaryKey"`
	Title       string            `gorm:"type:varchar(200);not null"`
	Description string            `gorm:"type:text"`
	Difficulty  string            `gorm:"type:varchar(16);index"`
	Marks       float64           `gorm:"not null;default:0"`
	Email       string            `gorm:"type:varchar(254);not null;index"`
	DueDate     string            `gorm:"type:varchar(40)"`
	Thumbnail   string            `gorm:"type:text"`
	Extra       datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (AssignmentRow) TableName() string { return "assignments" }

func assignmentToRow(a *model.Assignment) AssignmentRow {
	row := AssignmentRow{
		ID:          a.ID.Hex(),
		Title:       a.Title,
		Description: a.Description,
		Difficulty:  a.Difficulty,
		Marks:       a.Marks,
		Email:       a.Email,
		DueDate:     a.DueDate,
		Thumbnail:   a.Thumbnail,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if len(a.Extra) > 0 {
		row.Extra = datatypes.JSONMap(a.Extra)
	}
	return row
}

func (row AssignmentRow) toModel() (model.Assignment, error) {
	id, err := primitive.ObjectIDFromHex(row.ID)
	if err != nil {
		return model.Assignment{}, fmt.Errorf("corrupt assignment id %q: %w", row.ID, err)
	}
	a := model.Assignment{
		ID:          id,
		Title:       row.Title,
		Description: row.Description,
		Difficulty:  row.Difficulty,
		Marks:       row.Marks,
		Email:       row.Email,
		DueDate:     row.DueDate,
		Thumbnail:   row.Thumbnail,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
	if len(row.Extra) > 0 {
		a.Extra = map[string]any(row.Extra)
	}
	return a, nil
}

type GormAssignments struct {
	DB *gorm.DB
}

func NewGormAssignments(db *gorm.DB) *GormAssignments {
	return &GormAssignments{DB: db}
}

func (r *GormAssignments) Migrate(ctx context.Context) error {
	return r.DB.WithContext(ctx).AutoMigrate(&AssignmentRow{})
}

func (r *GormAssignments) List(ctx context.Context, f model.AssignmentFilter) ([]model.Assignment, error) {
	q := r.DB.WithContext(ctx).Model(&AssignmentRow{})
	if f.Difficulty != "" {
		q = q.Where("difficulty = ?", f.Difficulty)
	}

	var rows []AssignmentRow
	// id ObjectID ~ urutan waktu buat, sama dengan urutan natural mongo/bolt
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	out := make([]model.Assignment, 0, len(rows))
	for _, row := range rows {
		a, err := row.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *GormAssignments) Create(ctx context.Context, a *model.Assignment) error {
	row := assignmentToRow(a)
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

func (r *GormAssignments) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Assignment, error) {
	var row AssignmentRow
	err := r.DB.WithContext(ctx).Where("id = ?", id.Hex()).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find assignment: %w", err)
	}
	a, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormAssignments) Update(ctx context.Context, id primitive.ObjectID, patch model.AssignmentUpdate) (helper.UpdateResult, error) {
	updates := map[string]any{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Difficulty != nil {
		updates["difficulty"] = *patch.Difficulty
	}
	if patch.Marks != nil {
		updates["marks"] = *patch.Marks
	}
	if patch.DueDate != nil {
		updates["due_date"] = *patch.DueDate
	}
	if patch.Thumbnail != nil {
		updates["thumbnail"] = *patch.Thumbnail
	}
	if len(patch.Extra) > 0 {
		// merge jsonb; key lama yang tidak dikirim tetap ada
		updates["extra"] = gorm.Expr("COALESCE(extra, '{}'::jsonb) || ?::jsonb", datatypes.JSONMap(patch.Extra))
	}

	res := r.DB.WithContext(ctx).
		Model(&AssignmentRow{}).
		Where("id = ?", id.Hex()).
		Updates(updates)
	if res.Error != nil {
		return helper.UpdateResult{}, fmt.Errorf("update assignment: %w", res.Error)
	}
	return helper.UpdateResult{MatchedCount: res.RowsAffected, ModifiedCount: res.RowsAffected}, nil
}

func (r *GormAssignments) DeleteOwned(ctx context.Context, id primitive.ObjectID, email string) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND lower(email) = ?", id.Hex(), strings.ToLower(email)).
		Delete(&AssignmentRow{})
	if res.Error != nil {
		return 0, fmt.Errorf("delete assignment: %w", res.Error)
	}
	return res.RowsAffected, nil
}
