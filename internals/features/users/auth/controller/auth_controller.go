package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	authDto "studyhard_backend/internals/features/users/auth/dto"
	authRepo "studyhard_backend/internals/features/users/auth/repository"
	authService "studyhard_backend/internals/features/users/auth/service"
	helper "studyhard_backend/internals/helpers"
	helperAuth "studyhard_backend/internals/helpers/auth"
)

// CookieOptions: atribut cookie sesi, diturunkan dari APP_ENV.
type CookieOptions struct {
	Name        string
	Secure      bool
	SameSite    string
	AllowBearer bool
}

type AuthController struct {
	Tokens    *authService.TokenService
	Blacklist authRepo.BlacklistRepository
	Verifier  authService.IdentityVerifier // nil = payload klien dipercaya apa adanya
	Cookie    CookieOptions
	Validator *validator.Validate
}

func NewAuthController(
	tokens *authService.TokenService,
	blacklist authRepo.BlacklistRepository,
	verifier authService.IdentityVerifier,
	cookie CookieOptions,
) *AuthController {
	if cookie.Name == "" {
		cookie.Name = "token"
	}
	return &AuthController{
		Tokens:    tokens,
		Blacklist: blacklist,
		Verifier:  verifier,
		Cookie:    cookie,
		Validator: helper.NewValidator(),
	}
}

// =========================
// POST /jwt
// =========================
func (ctrl *AuthController) IssueToken(c *fiber.Ctx) error {
	var req authDto.IssueTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	id := req.Identity()
	if ctrl.Verifier != nil {
		verified, err := ctrl.Verifier.Verify(req.IDToken)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		// email & nama dari penyedia login; foto boleh dari klien
		id.Email, id.Name = verified.Email, verified.Name
		if verified.Photo != "" {
			id.Photo = verified.Photo
		}
	}
	if id.Email == "" {
		return helper.JsonValidationError(c, map[string][]string{"email": {"email is required"}})
	}

	token, exp, err := ctrl.Tokens.Issue(id)
	if err != nil {
		log.Error().Err(err).Msg("sign session token")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     ctrl.Cookie.Name,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HTTPOnly: true,
		Secure:   ctrl.Cookie.Secure,
		SameSite: ctrl.Cookie.SameSite,
	})

	return c.JSON(authDto.IssueTokenResponse{
		Success:   true,
		ExpiresAt: exp.Format(time.RFC3339),
	})
}

// =========================
// POST /logout
// =========================
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helperAuth.ExtractToken(c, ctrl.Cookie.Name, ctrl.Cookie.AllowBearer)

	ctrl.clearCookie(c)

	// token kadaluarsa / palsu tidak perlu di-blacklist
	if raw != "" {
		if _, exp, err := ctrl.Tokens.Parse(raw); err == nil {
			if err := ctrl.Blacklist.Revoke(c.UserContext(), ctrl.Tokens.HashToken(raw), exp); err != nil {
				log.Error().Err(err).Msg("revoke session token")
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke session")
			}
		}
	}

	return c.JSON(fiber.Map{"success": true})
}

// =========================
// GET /me
// =========================
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	id, err := helperAuth.GetIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", id)
}

func (ctrl *AuthController) clearCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     ctrl.Cookie.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   ctrl.Cookie.Secure,
		SameSite: ctrl.Cookie.SameSite,
	})
}
