package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"studyhard_backend/internals/features/submissions/model"
	helper "studyhard_backend/internals/helpers"
)

func TestCreateSubmissionRequest(t *testing.T) {
	v := helper.NewValidator()

	req := CreateSubmissionRequest{SubmitID: " 64b7f0c2a1b2c3d4e5f6a7b8 ", Examinee: "spoof@x.com"}
	req.Normalize()
	assert.NoError(t, v.Struct(req))
	assert.Equal(t, model.StatusPending, req.Status)

	s := req.ToModel("B@X.com", time.Now())
	assert.Equal(t, "b@x.com", s.Examinee)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f6a7b8", s.SubmitID)
	assert.False(t, s.ID.IsZero())
	assert.Nil(t, s.ObtainMarks)

	bad := CreateSubmissionRequest{SubmitID: "x", DocLink: "not a link"}
	bad.Normalize()
	assert.Error(t, v.Struct(bad))

	missing := CreateSubmissionRequest{}
	missing.Normalize()
	assert.Error(t, v.Struct(missing))
}

func TestGradeSubmissionRequest_MarksAlias(t *testing.T) {
	legacy := 60.0
	req := GradeSubmissionRequest{Marks: &legacy}
	req.Normalize()

	assert.NotNil(t, req.ObtainMarks)
	assert.Equal(t, 60.0, *req.ObtainMarks)
	assert.Equal(t, model.StatusCompleted, req.Status)

	g := req.ToGrade(" A@X.com ", time.Now())
	assert.Equal(t, 60.0, g.ObtainMarks)
	assert.Equal(t, "a@x.com", g.GradedBy)

	// obtainmarks menang atas alias
	primary := 80.0
	both := GradeSubmissionRequest{ObtainMarks: &primary, Marks: &legacy, Status: "Pending"}
	both.Normalize()
	assert.Equal(t, 80.0, *both.ObtainMarks)
	assert.Equal(t, model.StatusPending, both.Status)
}
