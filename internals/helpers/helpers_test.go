package helper

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseObjectID(t *testing.T) {
	id, err := ParseObjectID(" 64b7f0c2a1b2c3d4e5f6a7b8 ")
	require.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f6a7b8", id.Hex())

	for _, bad := range []string{"", "xyz", "64b7f0c2a1b2c3d4e5f6a7b", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := ParseObjectID(bad)
		var fe *fiber.Error
		require.True(t, errors.As(err, &fe), bad)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
		assert.Equal(t, "Invalid ID format", fe.Message)
	}
}

func TestParseDate(t *testing.T) {
	want := time.Date(2030, 1, 31, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2030-01-31", "2030-01-31T15:04:05Z", "2030-01-31T10:00:00.123Z"} {
		got, err := ParseDate("due_date", raw)
		require.NoError(t, err, raw)
		assert.True(t, want.Equal(*got), raw)
	}

	got, err := ParseDate("due_date", "  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = ParseDate("due_date", "31/01/2030")
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Contains(t, fe.Message, "due_date")
}

func TestValidatorUsesJSONNames(t *testing.T) {
	type payload struct {
		SubmitID string `json:"submit_id" validate:"required"`
	}
	err := NewValidator().Struct(payload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "submit_id")
}
