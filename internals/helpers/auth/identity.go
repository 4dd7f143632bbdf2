package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals key yang diisi middleware auth.
const LocIdentity = "identity"

// Identity adalah payload token yang sudah terverifikasi.
// Tidak dicek ulang ke tabel user; kepercayaannya hanya dari tanda tangan token.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Photo string `json:"photo,omitempty"`
}

func SetIdentity(c *fiber.Ctx, id Identity) {
	c.Locals(LocIdentity, id)
}

// GetIdentity membaca identity dari Locals; 401 jika gate belum dipasang / email kosong.
func GetIdentity(c *fiber.Ctx) (Identity, error) {
	id, ok := c.Locals(LocIdentity).(Identity)
	if !ok || strings.TrimSpace(id.Email) == "" {
		return Identity{}, fiber.NewError(fiber.StatusUnauthorized, "unauthorized access")
	}
	return id, nil
}

// SameEmail membandingkan email tanpa peduli huruf besar/kecil & spasi.
func SameEmail(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// ExtractToken: cookie sesi dulu, lalu Authorization Bearer jika diizinkan.
func ExtractToken(c *fiber.Ctx, cookieName string, allowBearer bool) string {
	if v := strings.TrimSpace(c.Cookies(cookieName)); v != "" {
		return v
	}
	if !allowBearer {
		return ""
	}
	const p = "bearer "
	authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if len(authz) > len(p) && strings.EqualFold(authz[:len(p)], p) {
		return strings.TrimSpace(authz[len(p):])
	}
	return ""
}
