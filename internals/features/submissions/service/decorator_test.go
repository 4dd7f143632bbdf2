package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	assignModel "studyhard_backend/internals/features/assignments/model"
	"studyhard_backend/internals/features/submissions/model"
	helper "studyhard_backend/internals/helpers"
)

type fakeLookup struct {
	items map[primitive.ObjectID]*assignModel.Assignment
	fail  map[primitive.ObjectID]bool
	calls int
}

func (f *fakeLookup) FindByID(_ context.Context, id primitive.ObjectID) (*assignModel.Assignment, error) {
	f.calls++
	if f.fail[id] {
		return nil, errors.New("storage down")
	}
	if a, ok := f.items[id]; ok {
		return a, nil
	}
	return nil, helper.ErrRecordNotFound
}

func TestDecorate(t *testing.T) {
	known := primitive.NewObjectID()
	missing := primitive.NewObjectID()
	broken := primitive.NewObjectID()

	lookup := &fakeLookup{
		items: map[primitive.ObjectID]*assignModel.Assignment{
			known: {ID: known, Title: "Algebra", Marks: 100},
		},
		fail: map[primitive.ObjectID]bool{broken: true},
	}
	d := NewDecorator(lookup)

	subs := []model.Submission{
		{SubmitID: known.Hex()},
		{SubmitID: known.Hex()},
		{SubmitID: missing.Hex()},
		{SubmitID: broken.Hex()},
		{SubmitID: "not-hex"},
	}

	out := d.Decorate(context.Background(), subs)
	require.Len(t, out, len(subs))

	require.NotNil(t, out[0].Title)
	assert.Equal(t, "Algebra", *out[0].Title)
	assert.Equal(t, 100.0, *out[0].Marks)
	assert.Equal(t, *out[0].Title, *out[1].Title)

	for _, ds := range out[2:] {
		assert.Nil(t, ds.Title, ds.SubmitID)
		assert.Nil(t, ds.Marks, ds.SubmitID)
	}

	// satu lookup per submit_id; hex rusak tidak menyentuh storage
	assert.Equal(t, 3, lookup.calls)

	again := d.Decorate(context.Background(), subs)
	assert.Equal(t, out, again)
}

func TestDecorate_Empty(t *testing.T) {
	out := NewDecorator(&fakeLookup{}).Decorate(context.Background(), nil)
	assert.NotNil(t, out)
	assert.Len(t, out, 0)
}
