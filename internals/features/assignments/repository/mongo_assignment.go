package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studyhard_backend/internals/features/assignments/model"
	helper "studyhard_backend/internals/helpers"
)

// nama koleksi mengikuti data lama (typo dipertahankan)
const AssignmentCollection = "assingments"

type MongoAssignments struct {
	coll *mongo.Collection
}

func NewMongoAssignments(db *mongo.Database) *MongoAssignments {
	return &MongoAssignments{coll: db.Collection(AssignmentCollection)}
}

func (r *MongoAssignments) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "difficulty", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create assignment indexes: %w", err)
	}
	return nil
}

func (r *MongoAssignments) List(ctx context.Context, f model.AssignmentFilter) ([]model.Assignment, error) {
	filter := bson.M{}
	if f.Difficulty != "" {
		filter["difficulty"] = f.Difficulty
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find assignments: %w", err)
	}
	out := make([]model.Assignment, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode assignments: %w", err)
	}
	return out, nil
}

func (r *MongoAssignments) Create(ctx context.Context, a *model.Assignment) error {
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

func (r *MongoAssignments) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Assignment, error) {
	var a model.Assignment
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, helper.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find assignment: %w", err)
	}
	return &a, nil
}

func (r *MongoAssignments) Update(ctx context.Context, id primitive.ObjectID, patch model.AssignmentUpdate) (helper.UpdateResult, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Difficulty != nil {
		set["difficulty"] = *patch.Difficulty
	}
	if patch.Marks != nil {
		set["marks"] = *patch.Marks
	}
	if patch.DueDate != nil {
		set["due_date"] = *patch.DueDate
	}
	if patch.Thumbnail != nil {
		set["thumbnail"] = *patch.Thumbnail
	}
	for k, v := range patch.Extra {
		set[k] = v
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return helper.UpdateResult{}, fmt.Errorf("update assignment: %w", err)
	}
	return helper.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *MongoAssignments) DeleteOwned(ctx context.Context, id primitive.ObjectID, email string) (int64, error) {
	// collation strength 2: email data lama bisa berhuruf besar
	opts := options.Delete().SetCollation(&options.Collation{Locale: "en", Strength: 2})
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id, "email": strings.ToLower(email)}, opts)
	if err != nil {
		return 0, fmt.Errorf("delete assignment: %w", err)
	}
	return res.DeletedCount, nil
}
