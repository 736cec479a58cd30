package repositories

import (
	"context"

	"luckycat.backend/internal/domain/entities"
)

// MenuRepository defines read-only menu listing operations
type MenuRepository interface {
	// GetByLanguage returns categories with their items for a language,
	// both ordered by position. Returns ErrNotFound when the language has
	// no categories.
	GetByLanguage(ctx context.Context, language entities.Language) ([]*entities.MenuCategory, error)
}
