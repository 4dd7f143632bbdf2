package service

import (
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"

	helperAuth "studyhard_backend/internals/helpers/auth"
)

var ErrUnauthorized = fiber.NewError(fiber.StatusUnauthorized, "unauthorized access")

// TokenService menandatangani & memverifikasi token sesi (HS256).
type TokenService struct {
	secret  []byte
	hashKey [32]byte
	ttl     time.Duration
	now     func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if strings.TrimSpace(secret) == "" {
		panic("TokenService: secret wajib diisi")
	}
	if ttl <= 0 {
		ttl = 9 * time.Hour
	}
	return &TokenService{
		secret:  []byte(secret),
		hashKey: blake2b.Sum256([]byte(secret)),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (s *TokenService) TTL() time.Duration { return s.ttl }

// Issue membuat token untuk identity; mengembalikan token & waktu kadaluarsa.
func (s *TokenService) Issue(id helperAuth.Identity) (string, time.Time, error) {
	now := s.now().UTC()
	exp := now.Add(s.ttl)

	// jti acak: dua login di detik yang sama tetap dapat token (dan hash blacklist) berbeda
	claims := jwt.MapClaims{
		"typ":   "access",
		"jti":   uuid.NewString(),
		"email": strings.TrimSpace(id.Email),
		"iat":   now.Unix(),
		"exp":   exp.Unix(),
	}
	if id.Name != "" {
		claims["name"] = id.Name
	}
	if id.Photo != "" {
		claims["photo"] = id.Photo
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, time.Unix(exp.Unix(), 0).UTC(), nil
}

// Parse memverifikasi tanda tangan + exp lalu mengembalikan identity.
func (s *TokenService) Parse(raw string) (helperAuth.Identity, time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return helperAuth.Identity{}, time.Time{}, ErrUnauthorized
	}

	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return helperAuth.Identity{}, time.Time{}, ErrUnauthorized
	}

	email := strings.ToLower(strClaim(claims, "email"))
	if email == "" {
		return helperAuth.Identity{}, time.Time{}, ErrUnauthorized
	}

	var exp time.Time
	if v, ok := claims["exp"].(float64); ok {
		exp = time.Unix(int64(v), 0).UTC()
	}

	return helperAuth.Identity{
		Email: email,
		Name:  strClaim(claims, "name"),
		Photo: strClaim(claims, "photo"),
	}, exp, nil
}

// HashToken: keyed blake2b, hex 64 char; raw token tidak pernah disimpan.
func (s *TokenService) HashToken(raw string) string {
	h, _ := blake2b.New256(s.hashKey[:])
	_, _ = h.Write([]byte(strings.TrimSpace(raw)))
	return hex.EncodeToString(h.Sum(nil))
}

func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
