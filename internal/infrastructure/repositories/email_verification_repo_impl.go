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

// EmailVerificationRepository implements email verification token operations
type EmailVerificationRepository struct {
	db *gorm.DB
}

// NewEmailVerificationRepository creates a new email verification repository
func NewEmailVerificationRepository(db *gorm.DB) *EmailVerificationRepository {
	return &EmailVerificationRepository{db: db}
}

// GetByUserID gets a verification record by owning user
func (r *EmailVerificationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.EmailVerification, error) {
	var m models.EmailVerification
	if err := GetDB(ctx, r.db).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return emailVerificationToEntity(&m), nil
}

// GetByToken gets a verification record by exact token match. Consumed
// records have a null token and can never match.
func (r *EmailVerificationRepository) GetByToken(ctx context.Context, token string) (*entities.EmailVerification, error) {
	var m models.EmailVerification
	if err := GetDB(ctx, r.db).Where("token = ?", token).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return emailVerificationToEntity(&m), nil
}

// Upsert atomically inserts or replaces the user's active token. The unique
// index on user_id keeps concurrent issuers from stacking rows.
func (r *EmailVerificationRepository) Upsert(ctx context.Context, userID uuid.UUID, token string) error {
	now := time.Now()
	m := &models.EmailVerification{
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

// Consume clears the token and stamps verified_at. Guarding on the token in
// the WHERE clause makes redemption single-use: a raced second call matches
// zero rows.
func (r *EmailVerificationRepository) Consume(ctx context.Context, token string) error {
	result := GetDB(ctx, r.db).
		Model(&models.EmailVerification{}).
		Where("token = ?", token).
		Updates(map[string]interface{}{
			"token":       nil,
			"verified_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func emailVerificationToEntity(m *models.EmailVerification) *entities.EmailVerification {
	return &entities.EmailVerification{
		ID:         m.ID,
		UserID:     m.UserID,
		Token:      null.StringFromPtr(m.Token),
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
		VerifiedAt: null.TimeFromPtr(m.VerifiedAt),
	}
}
