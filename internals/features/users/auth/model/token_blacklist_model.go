package model

import (
	"time"
)

// TokenBlacklist menyimpan HASH token yang sudah logout (bukan plaintext)
// sampai token tersebut kadaluarsa.
type TokenBlacklist struct {
	TokenHash string    `gorm:"column:token_hash;type:varchar(64);primaryKey" bson:"_id" json:"token_hash"`
	ExpiredAt time.Time `gorm:"column:expired_at;type:timestamptz;not null;index" bson:"expired_at" json:"expired_at"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" bson:"created_at" json:"created_at"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
