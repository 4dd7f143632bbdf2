package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"studyhard_backend/internals/features/assignments/model"
	helper "studyhard_backend/internals/helpers"
)

// AssignmentRepository: satu interface, tiga driver (mongo, postgres, bolt).
// FindByID mengembalikan helper.ErrRecordNotFound bila dokumen tidak ada.
type AssignmentRepository interface {
	List(ctx context.Context, f model.AssignmentFilter) ([]model.Assignment, error)
	Create(ctx context.Context, a *model.Assignment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Assignment, error)
	Update(ctx context.Context, id primitive.ObjectID, patch model.AssignmentUpdate) (helper.UpdateResult, error)
	// DeleteOwned menghapus hanya jika id & email cocok dalam satu operasi.
	DeleteOwned(ctx context.Context, id primitive.ObjectID, email string) (int64, error)
}
