package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "studyhard_backend/internals/helpers"
)

func TestCreateAssignmentRequest_ToModel(t *testing.T) {
	req := CreateAssignmentRequest{
		Title:      "  Algebra ",
		Difficulty: " EASY",
		Marks:      100,
		Email:      "spoof@x.com",
		DueDate:    "2030-01-31",
	}
	req.Normalize()
	require.NoError(t, helper.NewValidator().Struct(req))

	now := time.Now().UTC()
	a, err := req.ToModel("Owner@X.com", now, map[string]any{"creator_name": "Ann"})
	require.NoError(t, err)
	assert.Equal(t, "Algebra", a.Title)
	assert.Equal(t, "easy", a.Difficulty)
	assert.Equal(t, "owner@x.com", a.Email)
	assert.Equal(t, "2030-01-31", a.DueDate)
	assert.Equal(t, "Ann", a.Extra["creator_name"])
	assert.Equal(t, now, a.CreatedAt)
	assert.False(t, a.ID.IsZero())

	req.DueDate = "next week"
	_, err = req.ToModel("owner@x.com", now, nil)
	assert.Error(t, err)
}

func TestCreateAssignmentRequest_Validation(t *testing.T) {
	v := helper.NewValidator()
	for name, req := range map[string]CreateAssignmentRequest{
		"no title":       {Difficulty: "easy"},
		"bad difficulty": {Title: "x", Difficulty: "extreme"},
		"negative marks": {Title: "x", Difficulty: "hard", Marks: -5},
	} {
		req.Normalize()
		assert.Error(t, v.Struct(req), name)
	}
}

func TestUpdateAssignmentRequest_ToPatch(t *testing.T) {
	empty := UpdateAssignmentRequest{}
	patch, err := empty.ToPatch(nil)
	require.NoError(t, err)
	assert.True(t, patch.IsEmpty())

	title, difficulty, due := " New ", "Medium", "2031-06-01T08:00:00Z"
	req := UpdateAssignmentRequest{Title: &title, Difficulty: &difficulty, DueDate: &due}
	req.Normalize()
	require.NoError(t, helper.NewValidator().Struct(req))

	patch, err = req.ToPatch(nil)
	require.NoError(t, err)
	assert.False(t, patch.IsEmpty())
	assert.Equal(t, "New", *patch.Title)
	assert.Equal(t, "medium", *patch.Difficulty)
	assert.Equal(t, "2031-06-01T08:00:00Z", *patch.DueDate)
	assert.Nil(t, patch.Marks)
}

func TestUpdateAssignmentRequest_ExtraOnlyPatch(t *testing.T) {
	patch, err := UpdateAssignmentRequest{}.ToPatch(map[string]any{"room": "B2"})
	require.NoError(t, err)
	assert.False(t, patch.IsEmpty())
	assert.Equal(t, "B2", patch.Extra["room"])

	bad := "31/01/2030"
	_, err = UpdateAssignmentRequest{DueDate: &bad}.ToPatch(nil)
	assert.Error(t, err)
}
