package service

import (
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"

	helperAuth "studyhard_backend/internals/helpers/auth"
)

// IdentityVerifier menukar ID token dari penyedia login menjadi Identity terverifikasi.
type IdentityVerifier interface {
	Verify(idToken string) (helperAuth.Identity, error)
}

type GoogleVerifier struct {
	ClientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{ClientID: strings.TrimSpace(clientID)}
}

func (g *GoogleVerifier) Verify(idToken string) (helperAuth.Identity, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return helperAuth.Identity{}, fiber.NewError(fiber.StatusBadRequest, "id_token is required")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{g.ClientID}); err != nil {
		return helperAuth.Identity{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return helperAuth.Identity{}, fiber.NewError(fiber.StatusUnauthorized, "Failed to decode ID Token")
	}
	if strings.TrimSpace(claimSet.Email) == "" {
		return helperAuth.Identity{}, fiber.NewError(fiber.StatusUnauthorized, "ID Token has no email")
	}

	return helperAuth.Identity{
		Email: strings.ToLower(strings.TrimSpace(claimSet.Email)),
		Name:  claimSet.Name,
	}, nil
}
