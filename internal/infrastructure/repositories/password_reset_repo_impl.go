package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"luckycat.backend/internal/domain/entities"
	domainerrors "luckycat.backend/internal/domain/errors"
	"luckycat.backend/internal/infrastructure/models"
	"luckycat.backend/pkg/utils"
)

// PasswordResetRepository implements password reset token operations
type PasswordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository creates a new password reset repository
func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

// GetByUserID gets a reset record by owning user
func (r *PasswordResetRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.PasswordReset, error) {
	var m models.PasswordReset
	if err := GetDB(ctx, r.db).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return passwordResetToEntity(&m), nil
}

// GetByToken gets a reset record by exact token match
func (r *PasswordResetRepository) GetByToken(ctx context.Context, token string) (*entities.PasswordReset, error) {
	var m models.PasswordReset
	if err := GetDB(ctx, r.db).Where("token = ?", token).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return passwordResetToEntity(&m), nil
}

// Upsert atomically inserts or replaces the user's active reset token
func (r *PasswordResetRepository) Upsert(ctx context.Context, userID uuid.UUID, token string) error {
	now := time.Now()
	m := &models.PasswordReset{
		ID:        utils.GenerateUUIDv7(),
		UserID:    userID,
		Token:     &token,
		ExpiresAt: now.Add(entities.TokenTTL),
		CreatedAt: now,
	}
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"token":      token,
			"expires_at": m.ExpiresAt,
		}),
	}).Create(m).Error
}

// Consume clears the token and stamps changed_at
func (r *PasswordResetRepository) Consume(ctx context.Context, token string) error {
	result := GetDB(ctx, r.db).
		Model(&models.PasswordReset{}).
		Where("token = ?", token).
		Updates(map[string]interface{}{
			"token":      nil,
			"changed_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func passwordResetToEntity(m *models.PasswordReset) *entities.PasswordReset {
	return &entities.PasswordReset{
		ID:        m.ID,
		UserID:    m.UserID,
		Token:     null.StringFromPtr(m.Token),
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
		ChangedAt: null.TimeFromPtr(m.ChangedAt),
	}
}
