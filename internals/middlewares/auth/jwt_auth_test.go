package auth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helperAuth "studyhard_backend/internals/helpers/auth"
)

type stubParser map[string]string

func (s stubParser) Parse(raw string) (helperAuth.Identity, time.Time, error) {
	email, ok := s[raw]
	if !ok {
		return helperAuth.Identity{}, time.Time{}, errors.New("bad token")
	}
	return helperAuth.Identity{Email: email}, time.Now().Add(time.Hour), nil
}

func newGateApp(o AuthJWTOpts) *fiber.App {
	app := fiber.New()
	app.Get("/private", AuthJWT(o), func(c *fiber.Ctx) error {
		id, err := helperAuth.GetIdentity(c)
		if err != nil {
			return err
		}
		return c.SendString(id.Email)
	})
	return app
}

func call(t *testing.T, app *fiber.App, cookie, bearer string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: cookie})
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestAuthJWT_Cookie(t *testing.T) {
	app := newGateApp(AuthJWTOpts{Tokens: stubParser{"good": "a@x.com"}})

	status, body := call(t, app, "good", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "a@x.com", body)

	status, body = call(t, app, "", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Contains(t, body, "unauthorized access")

	status, _ = call(t, app, "bad", "")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAuthJWT_BearerOnlyWhenAllowed(t *testing.T) {
	parser := stubParser{"good": "a@x.com"}

	status, _ := call(t, newGateApp(AuthJWTOpts{Tokens: parser}), "", "good")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, newGateApp(AuthJWTOpts{Tokens: parser, AllowBearer: true}), "", "good")
	assert.Equal(t, http.StatusOK, status)
}

func TestAuthJWT_Blacklist(t *testing.T) {
	parser := stubParser{"good": "a@x.com", "revoked": "a@x.com", "boom": "a@x.com"}
	app := newGateApp(AuthJWTOpts{
		Tokens: parser,
		BlacklistChecker: func(_ context.Context, raw string) (bool, error) {
			switch raw {
			case "revoked":
				return true, nil
			case "boom":
				return false, errors.New("store down")
			}
			return false, nil
		},
	})

	status, _ := call(t, app, "good", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = call(t, app, "revoked", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, app, "boom", "")
	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestAuthJWT_PanicsWithoutParser(t *testing.T) {
	assert.Panics(t, func() { AuthJWT(AuthJWTOpts{}) })
}
