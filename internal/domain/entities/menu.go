package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Language represents a menu language
type Language string

const (
	LanguageEN Language = "EN"
	LanguageUA Language = "UA"
	LanguageRU Language = "RU"
)

// ValidLanguage reports whether l is one of the supported menu languages
func ValidLanguage(l Language) bool {
	switch l {
	case LanguageEN, LanguageUA, LanguageRU:
		return true
	}
	return false
}

// MenuItem represents a single dish on the menu
type MenuItem struct {
	ID          uuid.UUID   `json:"id"`
	CategoryID  uuid.UUID   `json:"categoryId"`
	Language    Language    `json:"language"`
	Title       string      `json:"title"`
	Description null.String `json:"description,omitempty"`
	Price       string      `json:"price"`
	ImageURL    null.String `json:"imageUrl,omitempty"`
	IsAvailable bool        `json:"isAvailable"`
	Position    int         `json:"position"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// MenuCategory represents a menu category with its items
type MenuCategory struct {
	ID          uuid.UUID   `json:"id"`
	Language    Language    `json:"language"`
	Title       string      `json:"title"`
	Description null.String `json:"description,omitempty"`
	ImageURL    null.String `json:"imageUrl,omitempty"`
	IsAvailable bool        `json:"isAvailable"`
	Position    int         `json:"position"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Items       []*MenuItem `json:"items"`
}
