package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"luckycat.backend/internal/domain/entities"
	domainerrors "luckycat.backend/internal/domain/errors"
	"luckycat.backend/internal/domain/repositories"
	"luckycat.backend/pkg/redis"
)

// MenuUsecase serves the read-only menu listing behind a TTL cache
type MenuUsecase struct {
	menuRepo repositories.MenuRepository
	cache    *redis.Client
	cacheTTL time.Duration
	log      *zap.Logger
}

// NewMenuUsecase creates a new menu usecase. cache may be nil; the listing
// then always hits the database.
func NewMenuUsecase(menuRepo repositories.MenuRepository, cache *redis.Client, cacheTTL time.Duration, log *zap.Logger) *MenuUsecase {
	return &MenuUsecase{
		menuRepo: menuRepo,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// GetMenuByLanguage returns the menu for a language, from cache when fresh.
// Cache failures are advisory: the database remains the source of truth.
func (u *MenuUsecase) GetMenuByLanguage(ctx context.Context, language entities.Language) ([]*entities.MenuCategory, error) {
	if language == "" {
		language = entities.LanguageEN
	}
	if !entities.ValidLanguage(language) {
		return nil, domainerrors.BadRequest(fmt.Sprintf("Unsupported language: %s", language))
	}

	cacheKey := "menu:" + string(language)
	if u.cache != nil {
		if cached, err := u.cache.Get(ctx, cacheKey); err == nil {
			var menu []*entities.MenuCategory
			if err := json.Unmarshal([]byte(cached), &menu); err == nil {
				return menu, nil
			}
			u.log.Warn("discarding unreadable menu cache entry", zap.String("key", cacheKey))
		} else if !errors.Is(err, redis.Nil) {
			u.log.Warn("menu cache read failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	menu, err := u.menuRepo.GetByLanguage(ctx, language)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("Menu not found for language: %s", language))
		}
		return nil, domainerrors.NewError("Failed to get menu", err)
	}

	if u.cache != nil {
		if data, err := json.Marshal(menu); err == nil {
			if err := u.cache.Set(ctx, cacheKey, data, u.cacheTTL); err != nil {
				u.log.Warn("menu cache write failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}
	}

	return menu, nil
}
