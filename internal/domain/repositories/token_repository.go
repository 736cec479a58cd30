package repositories

import (
	"context"

	"github.com/google/uuid"
	"luckycat.backend/internal/domain/entities"
)

// EmailVerificationRepository defines email verification token operations.
// Each user has at most one record; Upsert atomically replaces the active
// token keyed on user id.
type EmailVerificationRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.EmailVerification, error)
	GetByToken(ctx context.Context, token string) (*entities.EmailVerification, error)
	Upsert(ctx context.Context, userID uuid.UUID, token string) error
	// Consume clears the given token and stamps verified_at. Returns
	// ErrNotFound when the token is no longer the active one.
	Consume(ctx context.Context, token string) error
}

// PasswordResetRepository defines password reset token operations, a
// structural twin of EmailVerificationRepository.
type PasswordResetRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.PasswordReset, error)
	GetByToken(ctx context.Context, token string) (*entities.PasswordReset, error)
	Upsert(ctx context.Context, userID uuid.UUID, token string) error
	// Consume clears the given token and stamps changed_at
	Consume(ctx context.Context, token string) error
}
