package repositories

import (
	"context"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"luckycat.backend/internal/domain/entities"
	domainerrors "luckycat.backend/internal/domain/errors"
	"luckycat.backend/internal/infrastructure/models"
)

// MenuRepository implements read-only menu listing
type MenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository
func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// GetByLanguage returns categories with their items for a language, ordered
// by position
func (r *MenuRepository) GetByLanguage(ctx context.Context, language entities.Language) ([]*entities.MenuCategory, error) {
	var categoryModels []models.MenuCategory
	err := GetDB(ctx, r.db).
		Where("language = ?", string(language)).
		Order("position ASC").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("menu_items.position ASC")
		}).
		Find(&categoryModels).Error
	if err != nil {
		return nil, err
	}
	if len(categoryModels) == 0 {
		return nil, domainerrors.ErrNotFound
	}

	categories := make([]*entities.MenuCategory, 0, len(categoryModels))
	for i := range categoryModels {
		categories = append(categories, menuCategoryToEntity(&categoryModels[i]))
	}
	return categories, nil
}

func menuCategoryToEntity(m *models.MenuCategory) *entities.MenuCategory {
	items := make([]*entities.MenuItem, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, menuItemToEntity(&m.Items[i]))
	}
	return &entities.MenuCategory{
		ID:          m.ID,
		Language:    entities.Language(m.Language),
		Title:       m.Title,
		Description: null.StringFromPtr(m.Description),
		ImageURL:    null.StringFromPtr(m.ImageURL),
		IsAvailable: m.IsAvailable,
		Position:    m.Position,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Items:       items,
	}
}

func menuItemToEntity(m *models.MenuItem) *entities.MenuItem {
	return &entities.MenuItem{
		ID:          m.ID,
		CategoryID:  m.CategoryID,
		Language:    entities.Language(m.Language),
		Title:       m.Title,
		Description: null.StringFromPtr(m.Description),
		Price:       m.Price,
		ImageURL:    null.StringFromPtr(m.ImageURL),
		IsAvailable: m.IsAvailable,
		Position:    m.Position,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
