package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"studyhard_backend/internals/configs"
)

// ThumbnailStore menyimpan objek publik dan mengembalikan URL-nya.
type ThumbnailStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// NewThumbnailStore memilih backend dari THUMBNAIL_BACKEND (local|s3).
func NewThumbnailStore(cfg configs.ThumbnailConfig) (ThumbnailStore, error) {
	// nil interface saat gagal, bukan pointer nil yang dibungkus interface
	switch cfg.Backend {
	case "", "local":
		s, err := NewLocalStore(cfg.Dir, cfg.PublicBase)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "s3":
		s, err := NewS3Store(cfg.S3Bucket, cfg.S3Prefix, cfg.S3Region, cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown THUMBNAIL_BACKEND %q", cfg.Backend)
	}
}

// LocalStore: file di disk, disajikan fiber Static di PublicBase.
type LocalStore struct {
	Dir        string
	PublicBase string
}

func NewLocalStore(dir, publicBase string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create thumbnail dir: %w", err)
	}
	return &LocalStore{Dir: dir, PublicBase: strings.TrimSuffix(publicBase, "/")}, nil
}

func (s *LocalStore) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	path := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create thumbnail dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write thumbnail: %w", err)
	}
	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("thumbnail stored")
	return s.PublicBase + "/" + key, nil
}
