package repository

import (
	"context"
	"errors"

	"go.etcd.io/bbolt"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studyhard_backend/internals/databases/boltkv"
	"studyhard_backend/internals/features/submissions/model"
	helper "studyhard_backend/internals/helpers"
)

type BoltSubmissions struct {
	db *bbolt.DB
}

func NewBoltSubmissions(db *bbolt.DB) *BoltSubmissions {
	return &BoltSubmissions{db: db}
}

func (r *BoltSubmissions) List(_ context.Context, f model.SubmissionFilter) ([]model.Submission, error) {
	out := make([]model.Submission, 0)
	err := r.db.View(func(tx *bbolt.Tx) error {
		return boltkv.ForEach(tx, boltkv.BucketSubmissions, func(_ string, s *model.Submission) error {
			if f.Examinee != "" && s.Examinee != f.Examinee {
				return nil
			}
			if f.Status != "" && s.Status != f.Status {
				return nil
			}
			out = append(out, *s)
			return nil
		})
	})
	return out, err
}

func (r *BoltSubmissions) Create(_ context.Context, s *model.Submission) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		return boltkv.Put(tx, boltkv.BucketSubmissions, s.ID.Hex(), s)
	})
}

func (r *BoltSubmissions) FindByID(_ context.Context, id primitive.ObjectID) (*model.Submission, error) {
	var s *model.Submission
	err := r.db.View(func(tx *bbolt.Tx) error {
		var err error
		s, err = boltkv.Get[model.Submission](tx, boltkv.BucketSubmissions, id.Hex())
		return err
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *BoltSubmissions) Grade(_ context.Context, id primitive.ObjectID, g model.Grade) (helper.UpdateResult, error) {
	var res helper.UpdateResult
	err := r.db.Update(func(tx *bbolt.Tx) error {
		s, err := boltkv.Get[model.Submission](tx, boltkv.BucketSubmissions, id.Hex())
		if errors.Is(err, helper.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if s.Status == model.StatusCompleted || !g.Changes(s) {
			return nil
		}
		g.Apply(s)
		if err := boltkv.Put(tx, boltkv.BucketSubmissions, id.Hex(), s); err != nil {
			return err
		}
		res = helper.UpdateResult{MatchedCount: 1, ModifiedCount: 1}
		return nil
	})
	return res, err
}
