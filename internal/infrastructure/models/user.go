package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name            string     `gorm:"type:varchar(255);not null"`
	Email           string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Role            string     `gorm:"type:varchar(50);not null;default:'user'"`
	AvatarURL       *string    `gorm:"type:varchar(512)"`
	PasswordHash    *string    `gorm:"type:varchar(512)"`
	IsEmailVerified bool       `gorm:"not null;default:false"`
	LastLoginAt     *time.Time `gorm:"type:timestamp"`
	IsBanned        bool       `gorm:"not null;default:false"`
	BanReason       *string    `gorm:"type:varchar(1024)"`
	BannedAt        *time.Time `gorm:"type:timestamp"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
