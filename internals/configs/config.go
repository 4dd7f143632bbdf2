package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port        string
	Environment string

	// session
	JWTSecret        string
	TokenTTL         time.Duration
	CookieName       string
	AllowBearer      bool
	GoogleClientID   string
	BlacklistTTL     time.Duration
	CorsOrigins      []string
	RateLimit        int
	SessionRateLimit int
	// X-Forwarded-For hanya dipercaya dari alamat/CIDR ini; kosong = pakai IP TCP.
	TrustedProxies []string

	// storage
	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	Postgres      PostgresConfig
	BoltPath      string

	Thumbnails ThumbnailConfig
}

type PostgresConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	SSLMode  string
}

type ThumbnailConfig struct {
	Backend    string
	Dir        string
	PublicBase string

	S3Bucket    string
	S3Prefix    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
}

// =======================
// ENV LOADER
// =======================

// Load: logger disiapkan dari APP_ENV mentah dulu supaya log LoadEnv ikut format & level,
// lalu dipasang ulang sesuai Config final.
func Load(debug bool, files ...string) *Config {
	SetupLogger(strings.ToLower(GetEnv("APP_ENV", EnvDevelopment)), debug)
	cfg := LoadEnv(files...)
	SetupLogger(cfg.Environment, debug)
	return cfg
}

// LoadEnv membaca .env (kecuali di platform terkelola) lalu menyusun Config dari ENV.
func LoadEnv(files ...string) *Config {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" && os.Getenv("RENDER") == "" {
		if err := godotenv.Load(files...); err != nil {
			log.Warn().Msg("no .env file found, using system environment")
		} else {
			log.Info().Msg(".env file loaded")
		}
	} else {
		log.Info().Msg("running on managed platform, using system environment")
	}

	cfg := &Config{
		Port:        GetEnv("PORT", "5000"),
		Environment: strings.ToLower(GetEnv("APP_ENV", EnvDevelopment)),

		JWTSecret:        GetEnv("ACCESS_TOKEN_SECRET"),
		TokenTTL:         time.Duration(GetEnvInt("TOKEN_TTL_HOURS", 9)) * time.Hour,
		CookieName:       GetEnv("COOKIE_NAME", "token"),
		AllowBearer:      GetEnvBool("AUTH_ALLOW_BEARER", false),
		GoogleClientID:   GetEnv("GOOGLE_CLIENT_ID"),
		BlacklistTTL:     time.Duration(GetEnvInt("TOKEN_BLACKLIST_TTL_DAYS", 7)) * 24 * time.Hour,
		CorsOrigins:      GetEnvList("CORS_ORIGINS", "http://localhost:5173"),
		RateLimit:        GetEnvInt("RATE_LIMIT_PER_MINUTE", 100),
		SessionRateLimit: GetEnvInt("SESSION_RATE_LIMIT_PER_MINUTE", 10),
		TrustedProxies:   GetEnvList("TRUSTED_PROXIES", ""),

		StoreDriver:   strings.ToLower(GetEnv("STORE_DRIVER", "mongo")),
		MongoURI:      GetEnv("MONGO_URI"),
		MongoDatabase: GetEnv("MONGO_DATABASE", "StudyHard_database"),
		Postgres: PostgresConfig{
			User:     GetEnv("DB_USER"),
			Password: GetEnv("DB_PASSWORD"),
			Host:     GetEnv("DB_HOST", "localhost"),
			Port:     GetEnv("DB_PORT", "5432"),
			Name:     GetEnv("DB_NAME"),
			SSLMode:  GetEnv("DB_SSLMODE", "require"),
		},
		BoltPath: GetEnv("BOLT_PATH", "data/studyhard.db"),

		Thumbnails: ThumbnailConfig{
			Backend:     strings.ToLower(GetEnv("THUMBNAIL_BACKEND", "local")),
			Dir:         GetEnv("THUMBNAIL_DIR", "uploads/thumbnails"),
			PublicBase:  GetEnv("THUMBNAIL_PUBLIC_BASE", "/thumbnails"),
			S3Bucket:    GetEnv("S3_BUCKET"),
			S3Prefix:    GetEnv("S3_PREFIX", "thumbnails"),
			S3Region:    GetEnv("S3_REGION", "us-east-1"),
			S3Endpoint:  GetEnv("S3_ENDPOINT"),
			S3AccessKey: GetEnv("S3_ACCESS_KEY"),
			S3SecretKey: GetEnv("S3_SECRET_KEY"),
		},
	}

	if cfg.JWTSecret == "" {
		log.Error().Msg("ACCESS_TOKEN_SECRET is not set")
	} else {
		log.Info().Msg("ACCESS_TOKEN_SECRET loaded")
	}
	if cfg.GoogleClientID == "" {
		log.Warn().Msg("GOOGLE_CLIENT_ID not set: POST /jwt signs client-supplied identities as-is")
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// CookieSecure & CookieSameSite: production berjalan lintas-origin di HTTPS.
func (c *Config) CookieSecure() bool {
	return c.IsProduction()
}

func (c *Config) CookieSameSite() string {
	if c.IsProduction() {
		return "None"
	}
	return "Strict"
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func GetEnvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func GetEnvList(key, def string) []string {
	raw := GetEnv(key, def)
	out := make([]string, 0)
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
