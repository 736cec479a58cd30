package models

import (
	"time"

	"github.com/google/uuid"
)

type MenuCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Language    string    `gorm:"type:varchar(10);not null;default:'EN';index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:varchar(1024)"`
	ImageURL    *string   `gorm:"type:varchar(512)"`
	IsAvailable bool      `gorm:"not null;default:true"`
	Position    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []MenuItem `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (MenuCategory) TableName() string {
	return "menu_categories"
}

type MenuItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Language    string    `gorm:"type:varchar(10);not null;default:'EN'"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:varchar(1024)"`
	Price       string    `gorm:"type:varchar(50);not null"`
	ImageURL    *string   `gorm:"type:varchar(512)"`
	IsAvailable bool      `gorm:"not null;default:true"`
	Position    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (MenuItem) TableName() string {
	return "menu_items"
}
