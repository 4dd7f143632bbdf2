package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.uber.org/atomic"

	"studyhard_backend/internals/configs"
	database "studyhard_backend/internals/databases"
	assignRoute "studyhard_backend/internals/features/assignments/route"
	subRoute "studyhard_backend/internals/features/submissions/route"
	thumbRoute "studyhard_backend/internals/features/thumbnails/route"
	"studyhard_backend/internals/features/thumbnails/storage"
	authController "studyhard_backend/internals/features/users/auth/controller"
	authRoute "studyhard_backend/internals/features/users/auth/route"
	authService "studyhard_backend/internals/features/users/auth/service"
	"studyhard_backend/internals/middlewares"
	authMiddleware "studyhard_backend/internals/middlewares/auth"
)

type Deps struct {
	Config     *configs.Config
	Stores     *database.Stores
	Tokens     *authService.TokenService
	Verifier   authService.IdentityVerifier // nil = mode payload dipercaya
	Thumbnails storage.ThumbnailStore       // nil = upload thumbnail dimatikan
	Ready      *atomic.Bool
}

func SetupRoutes(app *fiber.App, d Deps) {
	cfg := d.Config

	// ===================== GATE =====================
	gate := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Tokens:      d.Tokens,
		CookieName:  cfg.CookieName,
		AllowBearer: cfg.AllowBearer,
		BlacklistChecker: func(ctx context.Context, raw string) (bool, error) {
			return d.Stores.Blacklist.IsRevoked(ctx, d.Tokens.HashToken(raw))
		},
	})

	// ===================== BASE =====================
	log.Info().Msg("Setting up BaseRoutes...")
	BaseRoutes(app, d.Stores, d.Ready)

	// ===================== AUTH / SESSION =====================
	log.Info().Msg("Setting up AuthRoutes...")
	authCtrl := authController.NewAuthController(d.Tokens, d.Stores.Blacklist, d.Verifier, authController.CookieOptions{
		Name:        cfg.CookieName,
		Secure:      cfg.CookieSecure(),
		SameSite:    cfg.CookieSameSite(),
		AllowBearer: cfg.AllowBearer,
	})
	authRoute.AuthRoutes(app, authCtrl, middlewares.SessionRateLimiter(cfg.SessionRateLimit), gate)

	// ===================== THUMBNAILS =====================
	// didaftarkan sebelum /assignments/:id
	if d.Thumbnails != nil {
		log.Info().Msg("Setting up ThumbnailRoutes...")
		thumbRoute.ThumbnailRoutes(app, d.Thumbnails, gate)
	}

	// ===================== ASSIGNMENTS =====================
	log.Info().Msg("Setting up AssignmentRoutes...")
	assignRoute.AssignmentRoutes(app, d.Stores.Assignments, gate)

	// ===================== SUBMISSIONS =====================
	log.Info().Msg("Setting up SubmissionRoutes...")
	subRoute.SubmissionRoutes(app, d.Stores.Submissions, d.Stores.Assignments, gate)
}
