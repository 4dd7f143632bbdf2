package boltkv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	helper "studyhard_backend/internals/helpers"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func openTemp(t *testing.T) *bbolt.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen_CreatesBuckets(t *testing.T) {
	db := openTemp(t)

	err := db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{BucketAssignments, BucketSubmissions, BucketBlacklist} {
			assert.NotNil(t, tx.Bucket(b), string(b))
		}
		return nil
	})
	require.NoError(t, err)
}

func TestPutGetDelete(t *testing.T) {
	db := openTemp(t)

	require.NoError(t, db.Update(func(tx *bbolt.Tx) error {
		return Put(tx, BucketAssignments, "k1", doc{Name: "one", Count: 1})
	}))

	require.NoError(t, db.View(func(tx *bbolt.Tx) error {
		got, err := Get[doc](tx, BucketAssignments, "k1")
		require.NoError(t, err)
		assert.Equal(t, doc{Name: "one", Count: 1}, *got)

		_, err = Get[doc](tx, BucketAssignments, "missing")
		assert.ErrorIs(t, err, helper.ErrRecordNotFound)
		return nil
	}))

	require.NoError(t, db.Update(func(tx *bbolt.Tx) error {
		return Delete(tx, BucketAssignments, "k1")
	}))
	require.NoError(t, db.View(func(tx *bbolt.Tx) error {
		_, err := Get[doc](tx, BucketAssignments, "k1")
		assert.ErrorIs(t, err, helper.ErrRecordNotFound)
		return nil
	}))
}

func TestForEach_KeyOrder(t *testing.T) {
	db := openTemp(t)

	require.NoError(t, db.Update(func(tx *bbolt.Tx) error {
		for _, k := range []string{"c", "a", "b"} {
			if err := Put(tx, BucketSubmissions, k, doc{Name: k}); err != nil {
				return err
			}
		}
		return nil
	}))

	var keys []string
	require.NoError(t, db.View(func(tx *bbolt.Tx) error {
		return ForEach(tx, BucketSubmissions, func(key string, d *doc) error {
			assert.Equal(t, key, d.Name)
			keys = append(keys, key)
			return nil
		})
	}))
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestUnknownBucket(t *testing.T) {
	db := openTemp(t)

	err := db.View(func(tx *bbolt.Tx) error {
		_, err := Get[doc](tx, []byte("nope"), "k")
		return err
	})
	assert.Error(t, err)
}
