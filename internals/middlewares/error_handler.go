package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	helper "studyhard_backend/internals/helpers"
)

// ErrorHandler: *fiber.Error dirender apa adanya, selain itu 500 generik.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	log.Error().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Interface("reqid", c.Locals(LocRequestID)).
		Msg("unhandled error")
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}
