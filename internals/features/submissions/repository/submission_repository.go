package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"studyhard_backend/internals/features/submissions/model"
	helper "studyhard_backend/internals/helpers"
)

type SubmissionRepository interface {
	List(ctx context.Context, f model.SubmissionFilter) ([]model.Submission, error)
	Create(ctx context.Context, s *model.Submission) error
	// FindByID mengembalikan helper.ErrRecordNotFound bila tidak ada.
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Submission, error)
	// Grade hanya menulis bila status belum completed dan ada field yang berubah;
	// selain itu ModifiedCount = 0.
	Grade(ctx context.Context, id primitive.ObjectID, g model.Grade) (helper.UpdateResult, error)
}
