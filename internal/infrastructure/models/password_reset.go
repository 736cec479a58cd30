package models

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset mirrors EmailVerification for password changes. ChangedAt is
// stamped when the password was actually changed via this token.
type PasswordReset struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Token     *string   `gorm:"type:varchar(512);index"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	ChangedAt *time.Time

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (PasswordReset) TableName() string {
	return "reset_password"
}
