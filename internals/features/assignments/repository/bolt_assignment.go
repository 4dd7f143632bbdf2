package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.etcd.io/bbolt"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studyhard_backend/internals/databases/boltkv"
	"studyhard_backend/internals/features/assignments/model"
	helper "studyhard_backend/internals/helpers"
)

// BoltAssignments: key = hex ObjectID, jadi urutan iterasi = urutan waktu buat.
type BoltAssignments struct {
	db *bbolt.DB
}

func NewBoltAssignments(db *bbolt.DB) *BoltAssignments {
	return &BoltAssignments{db: db}
}

func (r *BoltAssignments) List(_ context.Context, f model.AssignmentFilter) ([]model.Assignment, error) {
	out := make([]model.Assignment, 0)
	err := r.db.View(func(tx *bbolt.Tx) error {
		return boltkv.ForEach(tx, boltkv.BucketAssignments, func(_ string, a *model.Assignment) error {
			if f.Difficulty == "" || a.Difficulty == f.Difficulty {
				out = append(out, *a)
			}
			return nil
		})
	})
	return out, err
}

func (r *BoltAssignments) Create(_ context.Context, a *model.Assignment) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		return boltkv.Put(tx, boltkv.BucketAssignments, a.ID.Hex(), a)
	})
}

func (r *BoltAssignments) FindByID(_ context.Context, id primitive.ObjectID) (*model.Assignment, error) {
	var a *model.Assignment
	err := r.db.View(func(tx *bbolt.Tx) error {
		var err error
		a, err = boltkv.Get[model.Assignment](tx, boltkv.BucketAssignments, id.Hex())
		return err
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *BoltAssignments) Update(_ context.Context, id primitive.ObjectID, patch model.AssignmentUpdate) (helper.UpdateResult, error) {
	var res helper.UpdateResult
	err := r.db.Update(func(tx *bbolt.Tx) error {
		a, err := boltkv.Get[model.Assignment](tx, boltkv.BucketAssignments, id.Hex())
		if errors.Is(err, helper.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		patch.Apply(a)
		a.UpdatedAt = time.Now().UTC()
		if err := boltkv.Put(tx, boltkv.BucketAssignments, id.Hex(), a); err != nil {
			return err
		}
		res = helper.UpdateResult{MatchedCount: 1, ModifiedCount: 1}
		return nil
	})
	return res, err
}

func (r *BoltAssignments) DeleteOwned(_ context.Context, id primitive.ObjectID, email string) (int64, error) {
	var n int64
	err := r.db.Update(func(tx *bbolt.Tx) error {
		a, err := boltkv.Get[model.Assignment](tx, boltkv.BucketAssignments, id.Hex())
		if errors.Is(err, helper.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if !strings.EqualFold(a.Email, email) {
			return nil
		}
		if err := boltkv.Delete(tx, boltkv.BucketAssignments, id.Hex()); err != nil {
			return err
		}
		n = 1
		return nil
	})
	return n, err
}
