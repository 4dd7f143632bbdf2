package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"studyhard_backend/internals/features/submissions/model"
	helper "studyhard_backend/internals/helpers"
)

const SubmissionCollection = "submissions"

type MongoSubmissions struct {
	coll *mongo.Collection
}

func NewMongoSubmissions(db *mongo.Database) *MongoSubmissions {
	return &MongoSubmissions{coll: db.Collection(SubmissionCollection)}
}

func (r *MongoSubmissions) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "examinee", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create submission indexes: %w", err)
	}
	return nil
}

func (r *MongoSubmissions) List(ctx context.Context, f model.SubmissionFilter) ([]model.Submission, error) {
	filter := bson.M{}
	if f.Examinee != "" {
		filter["examinee"] = f.Examinee
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find submissions: %w", err)
	}
	out := make([]model.Submission, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	return out, nil
}

func (r *MongoSubmissions) Create(ctx context.Context, s *model.Submission) error {
	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

func (r *MongoSubmissions) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Submission, error) {
	var s model.Submission
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, helper.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find submission: %w", err)
	}
	return &s, nil
}

func (r *MongoSubmissions) Grade(ctx context.Context, id primitive.ObjectID, g model.Grade) (helper.UpdateResult, error) {
	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$ne": model.StatusCompleted},
		"$or": bson.A{
			bson.M{"obtainmarks": bson.M{"$ne": g.ObtainMarks}},
			bson.M{"feedback": bson.M{"$ne": g.Feedback}},
			bson.M{"status": bson.M{"$ne": g.Status}},
		},
	}
	update := bson.M{"$set": bson.M{
		"obtainmarks": g.ObtainMarks,
		"feedback":    g.Feedback,
		"status":      g.Status,
		"graded_by":   g.GradedBy,
		"graded_at":   g.GradedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return helper.UpdateResult{}, fmt.Errorf("grade submission: %w", err)
	}
	return helper.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
