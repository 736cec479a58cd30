package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailVerification holds one row per user. Token is null once consumed;
// the unique index on user_id makes the overwrite-on-resend atomic via
// ON CONFLICT.
type EmailVerification struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Token      *string   `gorm:"type:varchar(512);index"`
	ExpiresAt  time.Time `gorm:"not null"`
	CreatedAt  time.Time
	VerifiedAt *time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
