package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"studyhard_backend/internals/databases/boltkv"
	"studyhard_backend/internals/features/assignments/model"
	helper "studyhard_backend/internals/helpers"
)

func newBoltAssignments(t *testing.T) *BoltAssignments {
	t.Helper()
	db, err := boltkv.Open(filepath.Join(t.TempDir(), "a.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewBoltAssignments(db)
}

func newAssignment(title, difficulty, owner string) *model.Assignment {
	now := time.Now().UTC()
	return &model.Assignment{
		ID:         primitive.NewObjectID(),
		Title:      title,
		Difficulty: difficulty,
		Marks:      100,
		Email:      owner,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestBoltAssignments_CreateFindList(t *testing.T) {
	ctx := context.Background()
	repo := newBoltAssignments(t)

	a1 := newAssignment("A1", model.DifficultyEasy, "a@x.com")
	a2 := newAssignment("A2", model.DifficultyHard, "a@x.com")
	require.NoError(t, repo.Create(ctx, a1))
	require.NoError(t, repo.Create(ctx, a2))

	got, err := repo.FindByID(ctx, a1.ID)
	require.NoError(t, err)
	assert.Equal(t, "A1", got.Title)
	assert.Equal(t, a1.ID, got.ID)

	_, err = repo.FindByID(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, helper.ErrRecordNotFound)

	all, err := repo.List(ctx, model.AssignmentFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A1", all[0].Title)

	hard, err := repo.List(ctx, model.AssignmentFilter{Difficulty: model.DifficultyHard})
	require.NoError(t, err)
	require.Len(t, hard, 1)
	assert.Equal(t, "A2", hard[0].Title)
}

func TestBoltAssignments_UpdateLeavesOwner(t *testing.T) {
	ctx := context.Background()
	repo := newBoltAssignments(t)

	a := newAssignment("Old", model.DifficultyEasy, "a@x.com")
	require.NoError(t, repo.Create(ctx, a))

	title := "New"
	res, err := repo.Update(ctx, a.ID, model.AssignmentUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, helper.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, res)

	got, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, model.DifficultyEasy, got.Difficulty)

	res, err = repo.Update(ctx, primitive.NewObjectID(), model.AssignmentUpdate{Title: &title})
	require.NoError(t, err)
	assert.Zero(t, res.MatchedCount)
}

func TestBoltAssignments_DeleteOwned(t *testing.T) {
	ctx := context.Background()
	repo := newBoltAssignments(t)

	a := newAssignment("Mine", model.DifficultyMedium, "a@x.com")
	require.NoError(t, repo.Create(ctx, a))

	n, err := repo.DeleteOwned(ctx, a.ID, "b@x.com")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = repo.DeleteOwned(ctx, a.ID, "A@X.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	n, err = repo.DeleteOwned(ctx, a.ID, "a@x.com")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBoltAssignments_ExtraFieldsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newBoltAssignments(t)

	a := newAssignment("Essay", model.DifficultyHard, "a@x.com")
	a.DueDate = "2025-01-01"
	a.Extra = map[string]any{"creator_name": "Ann", "tags": []any{"x", "y"}}
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", got.DueDate)
	assert.Equal(t, "Ann", got.Extra["creator_name"])
	assert.Equal(t, []any{"x", "y"}, got.Extra["tags"])

	_, err = repo.Update(ctx, a.ID, model.AssignmentUpdate{Extra: map[string]any{"room": "B2"}})
	require.NoError(t, err)

	got, err = repo.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "B2", got.Extra["room"])
	assert.Equal(t, "Ann", got.Extra["creator_name"])
}
