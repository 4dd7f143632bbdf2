package database

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studyhard_backend/internals/configs"
	assignModel "studyhard_backend/internals/features/assignments/model"
	subModel "studyhard_backend/internals/features/submissions/model"
	helper "studyhard_backend/internals/helpers"
)

// Skenario yang sama dijalankan ke setiap driver yang tersedia.
// Mongo & Postgres hanya jalan jika MONGO_TEST_URI / POSTGRES_TEST_DSN di-set.
func storesUnderTest(t *testing.T) map[string]*Stores {
	t.Helper()
	ctx := context.Background()
	out := map[string]*Stores{}

	bolt, err := OpenBolt(filepath.Join(t.TempDir(), "contract.db"))
	require.NoError(t, err)
	out[DriverBolt] = bolt

	if uri := os.Getenv("MONGO_TEST_URI"); uri != "" {
		name := "studyhard_test_" + primitive.NewObjectID().Hex()
		s, err := openMongo(ctx, uri, name)
		require.NoError(t, err)
		out[DriverMongo] = s
	}
	if dsn := os.Getenv("POSTGRES_TEST_DSN"); dsn != "" {
		s, err := openPostgres(ctx, dsn)
		require.NoError(t, err)
		out[DriverPostgres] = s
	}

	t.Cleanup(func() {
		for _, s := range out {
			_ = s.Close(context.Background())
		}
	})
	return out
}

func TestStores_AssignmentContract(t *testing.T) {
	for driver, s := range storesUnderTest(t) {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Ping(ctx))

			owner := primitive.NewObjectID().Hex() + "@x.com"
			now := time.Now().UTC().Truncate(time.Millisecond)
			a := &assignModel.Assignment{
				ID:         primitive.NewObjectID(),
				Title:      "Algebra",
				Difficulty: assignModel.DifficultyEasy,
				Marks:      100,
				Email:      owner,
				DueDate:    "2030-01-31",
				Extra:      map[string]any{"creator_name": "Ann"},
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			require.NoError(t, s.Assignments.Create(ctx, a))

			got, err := s.Assignments.FindByID(ctx, a.ID)
			require.NoError(t, err)
			assert.Equal(t, "Algebra", got.Title)
			assert.Equal(t, owner, got.Email)
			assert.Equal(t, "2030-01-31", got.DueDate)
			assert.Equal(t, "Ann", got.Extra["creator_name"])

			marks := 80.0
			res, err := s.Assignments.Update(ctx, a.ID, assignModel.AssignmentUpdate{Marks: &marks})
			require.NoError(t, err)
			assert.EqualValues(t, 1, res.MatchedCount)

			got, err = s.Assignments.FindByID(ctx, a.ID)
			require.NoError(t, err)
			assert.Equal(t, 80.0, got.Marks)
			assert.Equal(t, "Algebra", got.Title)

			easy, err := s.Assignments.List(ctx, assignModel.AssignmentFilter{Difficulty: assignModel.DifficultyEasy})
			require.NoError(t, err)
			assert.True(t, containsAssignment(easy, a.ID))

			n, err := s.Assignments.DeleteOwned(ctx, a.ID, "intruder@x.com")
			require.NoError(t, err)
			assert.Zero(t, n)

			// email pemilik dicocokkan tanpa peduli huruf besar/kecil
			n, err = s.Assignments.DeleteOwned(ctx, a.ID, strings.ToUpper(owner))
			require.NoError(t, err)
			assert.EqualValues(t, 1, n)

			_, err = s.Assignments.FindByID(ctx, a.ID)
			assert.ErrorIs(t, err, helper.ErrRecordNotFound)
		})
	}
}

func TestStores_SubmissionGradeContract(t *testing.T) {
	for driver, s := range storesUnderTest(t) {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			examinee := primitive.NewObjectID().Hex() + "@x.com"

			sub := &subModel.Submission{
				ID:          primitive.NewObjectID(),
				SubmitID:    primitive.NewObjectID().Hex(),
				Examinee:    examinee,
				Status:      subModel.StatusPending,
				SubmittedAt: time.Now().UTC().Truncate(time.Millisecond),
			}
			require.NoError(t, s.Submissions.Create(ctx, sub))

			mine, err := s.Submissions.List(ctx, subModel.SubmissionFilter{Examinee: examinee})
			require.NoError(t, err)
			require.Len(t, mine, 1)
			assert.Nil(t, mine[0].ObtainMarks)

			draft := subModel.Grade{ObtainMarks: 40, Feedback: "draft", Status: subModel.StatusPending, GradedBy: "a@x.com", GradedAt: time.Now().UTC()}
			res, err := s.Submissions.Grade(ctx, sub.ID, draft)
			require.NoError(t, err)
			assert.EqualValues(t, 1, res.ModifiedCount)

			res, err = s.Submissions.Grade(ctx, sub.ID, draft)
			require.NoError(t, err)
			assert.Zero(t, res.ModifiedCount)

			final := subModel.Grade{ObtainMarks: 90, Feedback: "good", Status: subModel.StatusCompleted, GradedBy: "a@x.com", GradedAt: time.Now().UTC()}
			res, err = s.Submissions.Grade(ctx, sub.ID, final)
			require.NoError(t, err)
			assert.EqualValues(t, 1, res.ModifiedCount)

			res, err = s.Submissions.Grade(ctx, sub.ID, subModel.Grade{ObtainMarks: 10, Status: subModel.StatusPending})
			require.NoError(t, err)
			assert.Zero(t, res.ModifiedCount)

			got, err := s.Submissions.FindByID(ctx, sub.ID)
			require.NoError(t, err)
			assert.Equal(t, subModel.StatusCompleted, got.Status)
			require.NotNil(t, got.ObtainMarks)
			assert.Equal(t, 90.0, *got.ObtainMarks)
			assert.Equal(t, "a@x.com", got.GradedBy)
		})
	}
}

func TestStores_BlacklistContract(t *testing.T) {
	for driver, s := range storesUnderTest(t) {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			hash := primitive.NewObjectID().Hex()

			require.NoError(t, s.Blacklist.Revoke(ctx, hash, time.Now().Add(time.Hour)))
			require.NoError(t, s.Blacklist.Revoke(ctx, hash, time.Now().Add(time.Hour)))

			ok, err := s.Blacklist.IsRevoked(ctx, hash)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = s.Blacklist.IsRevoked(ctx, "unknown-"+hash)
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &configs.Config{StoreDriver: "sqlite"})
	assert.Error(t, err)
}

func containsAssignment(items []assignModel.Assignment, id primitive.ObjectID) bool {
	for _, it := range items {
		if it.ID == id {
			return true
		}
	}
	return false
}
