package configs

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("SH_STR", "value")
	t.Setenv("SH_EMPTY", "")
	t.Setenv("SH_INT", "42")
	t.Setenv("SH_INT_BAD", "forty")
	t.Setenv("SH_BOOL", "true")
	t.Setenv("SH_LIST", " https://a.app , ,https://b.app ")

	assert.Equal(t, "value", GetEnv("SH_STR", "def"))
	assert.Equal(t, "def", GetEnv("SH_EMPTY", "def"))
	assert.Equal(t, "", GetEnv("SH_MISSING"))

	assert.Equal(t, 42, GetEnvInt("SH_INT", 7))
	assert.Equal(t, 7, GetEnvInt("SH_INT_BAD", 7))
	assert.Equal(t, 7, GetEnvInt("SH_MISSING", 7))

	assert.True(t, GetEnvBool("SH_BOOL", false))
	assert.False(t, GetEnvBool("SH_MISSING", false))

	assert.Equal(t, []string{"https://a.app", "https://b.app"}, GetEnvList("SH_LIST", ""))
	assert.Equal(t, []string{"http://localhost:5173"}, GetEnvList("SH_MISSING", "http://localhost:5173"))
}

func TestCookieAttributes(t *testing.T) {
	prod := &Config{Environment: EnvProduction}
	assert.True(t, prod.CookieSecure())
	assert.Equal(t, "None", prod.CookieSameSite())

	dev := &Config{Environment: EnvDevelopment}
	assert.False(t, dev.CookieSecure())
	assert.Equal(t, "Strict", dev.CookieSameSite())
}

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("RENDER", "1")
	t.Setenv("ACCESS_TOKEN_SECRET", "s3cret")
	t.Setenv("STORE_DRIVER", "BOLT")
	t.Setenv("TOKEN_TTL_HOURS", "")
	t.Setenv("COOKIE_NAME", "")

	cfg := LoadEnv()
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "bolt", cfg.StoreDriver)
	assert.Equal(t, "token", cfg.CookieName)
	assert.Equal(t, 9*60*60, int(cfg.TokenTTL.Seconds()))
}

func TestLoadEnv_TrustedProxies(t *testing.T) {
	t.Setenv("RENDER", "1")
	t.Setenv("TRUSTED_PROXIES", "")
	assert.Empty(t, LoadEnv().TrustedProxies)

	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 172.16.0.0/12")
	assert.Equal(t, []string{"10.0.0.1", "172.16.0.0/12"}, LoadEnv().TrustedProxies)
}

func TestLoad_ConfiguresLoggerAroundEnv(t *testing.T) {
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	t.Setenv("RENDER", "1")
	t.Setenv("APP_ENV", "Production")

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	cfg := Load(true)
	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	cfg = Load(false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.True(t, cfg.IsProduction())
}
