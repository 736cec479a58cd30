package repositories

import (
	"context"

	"github.com/google/uuid"
	"luckycat.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	// Patch applies the non-nil fields of patch to the user row
	Patch(ctx context.Context, id uuid.UUID, patch *entities.UserPatch) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}
