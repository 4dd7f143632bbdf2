package auth

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	helper "studyhard_backend/internals/helpers"
	helperAuth "studyhard_backend/internals/helpers/auth"
)

type TokenParser interface {
	Parse(raw string) (helperAuth.Identity, time.Time, error)
}

type AuthJWTOpts struct {
	Tokens TokenParser

	// default "token"
	CookieName string

	// Authorization: Bearer sebagai fallback cookie
	AllowBearer bool

	// true = token sudah logout
	BlacklistChecker func(ctx context.Context, raw string) (bool, error)
}

// AuthJWT: gate untuk semua route privat. Gagal apa pun → 401 "unauthorized access".
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	if o.Tokens == nil {
		panic("AuthJWT: Tokens wajib diisi")
	}
	cookieName := strings.TrimSpace(o.CookieName)
	if cookieName == "" {
		cookieName = "token"
	}

	return func(c *fiber.Ctx) error {
		raw := helperAuth.ExtractToken(c, cookieName, o.AllowBearer)
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized access")
		}

		id, _, err := o.Tokens.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized access")
		}

		if o.BlacklistChecker != nil {
			revoked, err := o.BlacklistChecker(c.UserContext(), raw)
			if err != nil {
				log.Error().Err(err).Msg("blacklist check")
				return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
			if revoked {
				return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized access")
			}
		}

		helperAuth.SetIdentity(c, id)
		return c.Next()
	}
}
