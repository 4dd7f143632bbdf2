package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	authModel "studyhard_backend/internals/features/users/auth/model"
)

const BlacklistCollection = "token_blacklist"

type MongoBlacklist struct {
	coll *mongo.Collection
}

func NewMongoBlacklist(db *mongo.Database) *MongoBlacklist {
	return &MongoBlacklist{coll: db.Collection(BlacklistCollection)}
}

// EnsureIndexes: TTL index supaya Mongo ikut membersihkan entri kadaluarsa.
func (r *MongoBlacklist) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expired_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0).SetName("expired_at_ttl"),
	})
	if err != nil {
		return fmt.Errorf("create blacklist ttl index: %w", err)
	}
	return nil
}

func (r *MongoBlacklist) Revoke(ctx context.Context, tokenHash string, expiresAt time.Time) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": tokenHash},
		bson.M{
			"$set":         bson.M{"expired_at": expiresAt.UTC()},
			"$setOnInsert": bson.M{"created_at": time.Now().UTC()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (r *MongoBlacklist) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	var row authModel.TokenBlacklist
	err := r.coll.FindOne(ctx, bson.M{"_id": tokenHash}).Decode(&row)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check blacklist: %w", err)
	}
	return true, nil
}

func (r *MongoBlacklist) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"expired_at": bson.M{"$lt": before.UTC()}})
	if err != nil {
		return 0, fmt.Errorf("purge blacklist: %w", err)
	}
	return res.DeletedCount, nil
}
