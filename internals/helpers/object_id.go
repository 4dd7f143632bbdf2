package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrRecordNotFound dikembalikan semua repository saat dokumen tidak ada,
// apa pun driver storage-nya.
var ErrRecordNotFound = errors.New("record not found")

// ParseObjectID memvalidasi id 24-hex sebelum menyentuh storage.
func ParseObjectID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(raw))
	if err != nil {
		return primitive.NilObjectID, fiber.NewError(fiber.StatusBadRequest, "Invalid ID format")
	}
	return id, nil
}
