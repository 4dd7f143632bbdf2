package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAssignment_JSONKeepsExtraFields(t *testing.T) {
	a := Assignment{
		ID:      primitive.NewObjectID(),
		Title:   "Essay",
		DueDate: "2025-01-01",
		Extra:   map[string]any{"creator_name": "Ann", "title": "shadowed"},
	}

	raw, err := json.Marshal(a)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Ann", body["creator_name"])
	assert.Equal(t, "Essay", body["title"], "field bawaan tidak boleh ditimpa Extra")
	assert.Equal(t, "2025-01-01", body["due_date"])

	var back Assignment
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, a.ID, back.ID)
	assert.Equal(t, map[string]any{"creator_name": "Ann"}, back.Extra)
}

func TestExtraFields(t *testing.T) {
	extra, invalid := ExtraFields(map[string]any{
		"title":     "x",
		"room":      "B2",
		"$where":    "1",
		"a.b":       1,
		"due_date":  "2025-01-01",
		"reviewers": []any{"b@x.com"},
	})
	assert.Equal(t, map[string]any{"room": "B2", "reviewers": []any{"b@x.com"}}, extra)
	assert.ElementsMatch(t, []string{"$where", "a.b"}, invalid)

	extra, invalid = ExtraFields(map[string]any{"title": "x"})
	assert.Nil(t, extra)
	assert.Empty(t, invalid)
}

func TestAssignmentUpdate_ApplyMergesExtra(t *testing.T) {
	a := Assignment{Extra: map[string]any{"room": "A1", "creator_name": "Ann"}}
	AssignmentUpdate{Extra: map[string]any{"room": "B2"}}.Apply(&a)
	assert.Equal(t, map[string]any{"room": "B2", "creator_name": "Ann"}, a.Extra)

	var empty Assignment
	AssignmentUpdate{Extra: map[string]any{"x": 1}}.Apply(&empty)
	assert.Equal(t, 1, empty.Extra["x"])
}
