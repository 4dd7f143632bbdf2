package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	authRepo "studyhard_backend/internals/features/users/auth/repository"
)

// PurgeOnce menghapus entri blacklist yang expired lebih dari ttl yang lalu.
func PurgeOnce(ctx context.Context, repo authRepo.BlacklistRepository, ttl time.Duration) (int64, error) {
	deleteBefore := time.Now().UTC().Add(-ttl)
	return repo.PurgeExpired(ctx, deleteBefore)
}

// StartBlacklistCleanupScheduler jalan di goroutine sampai ctx dibatalkan.
func StartBlacklistCleanupScheduler(ctx context.Context, repo authRepo.BlacklistRepository, ttl, interval time.Duration) {
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			log.Info().Msg("[CLEANUP] Menjalankan pembersihan token_blacklist...")

			n, err := PurgeOnce(ctx, repo, ttl)
			switch {
			case err != nil:
				log.Error().Err(err).Msg("[CLEANUP] Gagal hapus token kadaluarsa")
			case n > 0:
				log.Info().Int64("deleted", n).Msg("[CLEANUP] token kadaluarsa dihapus")
			default:
				log.Debug().Msg("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			}

			select {
			case <-ctx.Done():
				log.Info().Msg("[CLEANUP] scheduler berhenti")
				return
			case <-ticker.C:
			}
		}
	}()
}
