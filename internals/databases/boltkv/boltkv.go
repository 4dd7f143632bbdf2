// Package boltkv menyimpan dokumen JSON di bucket bbolt.
// Dipakai oleh driver storage "bolt" (dev lokal & test).
package boltkv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	helper "studyhard_backend/internals/helpers"
)

var (
	BucketAssignments = []byte("Assignments")
	BucketSubmissions = []byte("Submissions")
	BucketBlacklist   = []byte("TokenBlacklist")
)

// Open membuka (atau membuat) file DB beserta semua bucket.
func Open(path string) (*bbolt.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create bolt dir: %w", err)
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{BucketAssignments, BucketSubmissions, BucketBlacklist} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bolt buckets: %w", err)
	}
	return db, nil
}

func bucket(tx *bbolt.Tx, name []byte) (*bbolt.Bucket, error) {
	b := tx.Bucket(name)
	if b == nil {
		return nil, fmt.Errorf("bucket %s not found", name)
	}
	return b, nil
}

func Put[T any](tx *bbolt.Tx, name []byte, key string, value T) error {
	b, err := bucket(tx, name)
	if err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return b.Put([]byte(key), data)
}

// Get mengembalikan helper.ErrRecordNotFound jika key tidak ada.
func Get[T any](tx *bbolt.Tx, name []byte, key string) (*T, error) {
	b, err := bucket(tx, name)
	if err != nil {
		return nil, err
	}
	v := b.Get([]byte(key))
	if v == nil {
		return nil, helper.ErrRecordNotFound
	}
	var out T
	if err := json.Unmarshal(v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func Delete(tx *bbolt.Tx, name []byte, key string) error {
	b, err := bucket(tx, name)
	if err != nil {
		return err
	}
	return b.Delete([]byte(key))
}

// ForEach iterasi urut key; fn boleh return error untuk berhenti.
func ForEach[T any](tx *bbolt.Tx, name []byte, fn func(key string, value *T) error) error {
	b, err := bucket(tx, name)
	if err != nil {
		return err
	}
	return b.ForEach(func(k, v []byte) error {
		var item T
		if err := json.Unmarshal(v, &item); err != nil {
			return fmt.Errorf("decode %s/%s: %w", name, k, err)
		}
		return fn(string(k), &item)
	})
}
