package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"luckycat.backend/internal/domain/entities"
	domainerrors "luckycat.backend/internal/domain/errors"
	"luckycat.backend/internal/infrastructure/models"
	"luckycat.backend/pkg/utils"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = utils.GenerateUUIDv7()
	}
	m := &models.User{
		ID:              user.ID,
		Name:            user.Name,
		Email:           user.Email,
		Role:            string(user.Role),
		AvatarURL:       user.AvatarURL.Ptr(),
		PasswordHash:    hashPtr(user.PasswordHash),
		IsEmailVerified: user.IsEmailVerified,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}

	if err := GetDB(ctx, r.db).Create(m).Error; err != nil {
		return err
	}
	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email (exact, case-sensitive match)
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// Patch applies the non-nil fields of patch to the user row
func (r *UserRepository) Patch(ctx context.Context, id uuid.UUID, patch *entities.UserPatch) error {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.AvatarURL != nil {
		updates["avatar_url"] = *patch.AvatarURL
	}
	if patch.Role != nil {
		updates["role"] = string(*patch.Role)
	}
	if patch.PasswordHash != nil {
		updates["password_hash"] = *patch.PasswordHash
	}
	if patch.IsEmailVerified != nil {
		updates["is_email_verified"] = *patch.IsEmailVerified
	}

	result := GetDB(ctx, r.db).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateLastLogin stamps last_login_at with the current time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Model(&models.User{}).Where("id = ?", id).Update("last_login_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete hard-deletes a user; token rows cascade on the foreign key
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func hashPtr(hash string) *string {
	if hash == "" {
		return nil
	}
	return &hash
}

func userToEntity(m *models.User) *entities.User {
	var passwordHash string
	if m.PasswordHash != nil {
		passwordHash = *m.PasswordHash
	}
	return &entities.User{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Role:            entities.UserRole(m.Role),
		AvatarURL:       null.StringFromPtr(m.AvatarURL),
		PasswordHash:    passwordHash,
		IsEmailVerified: m.IsEmailVerified,
		LastLoginAt:     null.TimeFromPtr(m.LastLoginAt),
		IsBanned:        m.IsBanned,
		BanReason:       null.StringFromPtr(m.BanReason),
		BannedAt:        null.TimeFromPtr(m.BannedAt),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
