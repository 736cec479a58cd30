package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"luckycat.backend/internal/domain/entities"
	domainerrors "luckycat.backend/internal/domain/errors"
	"luckycat.backend/internal/domain/repositories"
	"luckycat.backend/pkg/crypto"
)

// UserUsecase handles user management operations
type UserUsecase struct {
	userRepo repositories.UserRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserRepository) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// GetByID gets a user by ID
func (u *UserUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, domainerrors.NewError("Failed to get user by ID", err)
	}
	return user, nil
}

// Create creates a user directly, bypassing the verification flow. Used by
// admin tooling.
func (u *UserUsecase) Create(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	existing, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.NewError("Failed to create user", err)
	}
	if existing != nil {
		return nil, domainerrors.Conflict("Email is already in use")
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	user := &entities.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         entities.UserRoleUser,
	}
	if input.AvatarURL != "" {
		user.AvatarURL.SetValid(input.AvatarURL)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, domainerrors.NewError("Failed to create user", err)
	}
	return user, nil
}

// Update applies an optional-field patch and returns the updated user
func (u *UserUsecase) Update(ctx context.Context, id uuid.UUID, patch *entities.UserPatch) (*entities.User, error) {
	if patch.Empty() {
		return nil, domainerrors.BadRequest("No fields to update")
	}
	if patch.Role != nil && !entities.ValidRole(*patch.Role) {
		return nil, domainerrors.BadRequest("Invalid role")
	}

	if err := u.userRepo.Patch(ctx, id, patch); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, domainerrors.NewError("Failed to update user", err)
	}
	return u.GetByID(ctx, id)
}

// ConfirmPassword checks a plaintext password against the stored digest.
// A missing digest counts as a mismatch.
func (u *UserUsecase) ConfirmPassword(ctx context.Context, id uuid.UUID, password string) (bool, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return false, domainerrors.NotFound("User not found")
		}
		return false, domainerrors.NewError("Failed to confirm password", err)
	}
	return crypto.CheckPassword(password, user.PasswordHash), nil
}

// UpdatePassword replaces the user's password. The new password must differ
// from the current one.
func (u *UserUsecase) UpdatePassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("User not found")
		}
		return domainerrors.NewError("Failed to update password", err)
	}

	if crypto.CheckPassword(newPassword, user.PasswordHash) {
		return domainerrors.BadRequest("New password must be different from the old password")
	}

	passwordHash, err := crypto.HashPassword(newPassword)
	if err != nil {
		return domainerrors.InternalError(err)
	}
	if err := u.userRepo.Patch(ctx, id, &entities.UserPatch{PasswordHash: &passwordHash}); err != nil {
		return domainerrors.NewError("Failed to update password", err)
	}
	return nil
}

// Delete removes a user; token records cascade with the row
func (u *UserUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("User not found")
		}
		return domainerrors.NewError("Failed to delete user", err)
	}
	return nil
}
