package repository

import (
	"context"
	"errors"
	"time"

	"go.etcd.io/bbolt"

	"studyhard_backend/internals/databases/boltkv"
	authModel "studyhard_backend/internals/features/users/auth/model"
	helper "studyhard_backend/internals/helpers"
)

type BoltBlacklist struct {
	db *bbolt.DB
}

func NewBoltBlacklist(db *bbolt.DB) *BoltBlacklist {
	return &BoltBlacklist{db: db}
}

func (r *BoltBlacklist) Revoke(_ context.Context, tokenHash string, expiresAt time.Time) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		row, err := boltkv.Get[authModel.TokenBlacklist](tx, boltkv.BucketBlacklist, tokenHash)
		switch {
		case errors.Is(err, helper.ErrRecordNotFound):
			row = &authModel.TokenBlacklist{TokenHash: tokenHash, CreatedAt: time.Now().UTC()}
		case err != nil:
			return err
		}
		row.ExpiredAt = expiresAt.UTC()
		return boltkv.Put(tx, boltkv.BucketBlacklist, tokenHash, row)
	})
}

func (r *BoltBlacklist) IsRevoked(_ context.Context, tokenHash string) (bool, error) {
	var found bool
	err := r.db.View(func(tx *bbolt.Tx) error {
		_, err := boltkv.Get[authModel.TokenBlacklist](tx, boltkv.BucketBlacklist, tokenHash)
		if errors.Is(err, helper.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	return found, err
}

func (r *BoltBlacklist) PurgeExpired(_ context.Context, before time.Time) (int64, error) {
	var n int64
	err := r.db.Update(func(tx *bbolt.Tx) error {
		var stale []string
		if err := boltkv.ForEach(tx, boltkv.BucketBlacklist, func(key string, row *authModel.TokenBlacklist) error {
			if row.ExpiredAt.Before(before) {
				stale = append(stale, key)
			}
			return nil
		}); err != nil {
			return err
		}
		// hapus di luar ForEach; bbolt melarang mutasi saat iterasi
		for _, key := range stale {
			if err := boltkv.Delete(tx, boltkv.BucketBlacklist, key); err != nil {
				return err
			}
			n++
		}
		return nil
	})
	return n, err
}
