package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var dateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

// ParseDate menerima "YYYY-MM-DD" atau RFC3339, dinormalisasi ke tengah malam UTC.
func ParseDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d, nil
		}
	}
	return nil, fiber.NewError(fiber.StatusBadRequest, field+" must be YYYY-MM-DD or RFC3339")
}
