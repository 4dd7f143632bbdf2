package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	assignModel "studyhard_backend/internals/features/assignments/model"
	"studyhard_backend/internals/features/submissions/model"
	helper "studyhard_backend/internals/helpers"
)

type AssignmentLookup interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*assignModel.Assignment, error)
}

// Decorator menempelkan title & marks assignment ke submission (best-effort).
type Decorator struct {
	Assignments AssignmentLookup
}

func NewDecorator(lookup AssignmentLookup) *Decorator {
	return &Decorator{Assignments: lookup}
}

// Decorate: lookup per submit_id di-memo dalam satu panggilan.
// submit_id rusak / assignment hilang / error storage → submission dikembalikan tanpa dekorasi.
func (d *Decorator) Decorate(ctx context.Context, subs []model.Submission) []model.DecoratedSubmission {
	memo := make(map[string]*assignModel.Assignment)
	out := make([]model.DecoratedSubmission, 0, len(subs))

	for _, s := range subs {
		ds := model.DecoratedSubmission{Submission: s}
		if a := d.lookup(ctx, memo, s.SubmitID); a != nil {
			title, marks := a.Title, a.Marks
			ds.Title = &title
			ds.Marks = &marks
		}
		out = append(out, ds)
	}
	return out
}

func (d *Decorator) lookup(ctx context.Context, memo map[string]*assignModel.Assignment, submitID string) *assignModel.Assignment {
	if a, ok := memo[submitID]; ok {
		return a
	}

	var found *assignModel.Assignment
	if oid, err := primitive.ObjectIDFromHex(submitID); err == nil {
		a, err := d.Assignments.FindByID(ctx, oid)
		switch {
		case err == nil:
			found = a
		case !errors.Is(err, helper.ErrRecordNotFound):
			log.Warn().Err(err).Str("submit_id", submitID).Msg("decorate submission")
		}
	}
	memo[submitID] = found
	return found
}
