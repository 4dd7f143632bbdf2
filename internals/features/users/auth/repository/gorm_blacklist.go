package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "studyhard_backend/internals/features/users/auth/model"
)

type GormBlacklist struct {
	DB *gorm.DB
}

func NewGormBlacklist(db *gorm.DB) *GormBlacklist {
	return &GormBlacklist{DB: db}
}

func (r *GormBlacklist) Revoke(ctx context.Context, tokenHash string, expiresAt time.Time) error {
	row := authModel.TokenBlacklist{
		TokenHash: tokenHash,
		ExpiredAt: expiresAt.UTC(),
	}
	// ON CONFLICT sesuai primary key token_hash
	err := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "token_hash"}},
			DoUpdates: clause.AssignmentColumns([]string{"expired_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (r *GormBlacklist) IsRevoked(ctx context.Context, tokenHash string) (bool, error) {
	var n int64
	if err := r.DB.WithContext(ctx).
		Model(&authModel.TokenBlacklist{}).
		Where("token_hash = ?", tokenHash).
		Count(&n).Error; err != nil {
		return false, fmt.Errorf("check blacklist: %w", err)
	}
	return n > 0, nil
}

func (r *GormBlacklist) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("expired_at < ?", before.UTC()).
		Delete(&authModel.TokenBlacklist{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge blacklist: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *GormBlacklist) Migrate(ctx context.Context) error {
	return r.DB.WithContext(ctx).AutoMigrate(&authModel.TokenBlacklist{})
}
