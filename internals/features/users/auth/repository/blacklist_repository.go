// internals/features/users/auth/repository/blacklist_repository.go
package repository

import (
	"context"
	"time"
)

// BlacklistRepository menyimpan hash token yang sudah di-revoke.
type BlacklistRepository interface {
	// Revoke idempoten: revoke token yang sama dua kali tetap sukses.
	Revoke(ctx context.Context, tokenHash string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
	// PurgeExpired menghapus entri yang expired_at < before.
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}
