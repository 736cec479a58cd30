package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"luckycat.backend/internal/domain/entities"
	domainerrors "luckycat.backend/internal/domain/errors"
	"luckycat.backend/internal/domain/repositories"
	"luckycat.backend/pkg/crypto"
)

var generateToken = crypto.GenerateVerificationToken

// AuthUsecase handles registration, authentication and the token lifecycle
type AuthUsecase struct {
	userRepo  repositories.UserRepository
	verifRepo repositories.EmailVerificationRepository
	resetRepo repositories.PasswordResetRepository
	mail      repositories.MailSender
	uow       repositories.UnitOfWork
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	verifRepo repositories.EmailVerificationRepository,
	resetRepo repositories.PasswordResetRepository,
	mail repositories.MailSender,
	uow repositories.UnitOfWork,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:  userRepo,
		verifRepo: verifRepo,
		resetRepo: resetRepo,
		mail:      mail,
		uow:       uow,
	}
}

// SignUp registers a new user and issues an email verification token.
//
// A duplicate unverified email never silently succeeds: the pending account
// keeps (or refreshes) its token and the caller gets a Conflict explaining
// why no new account was made.
func (u *AuthUsecase) SignUp(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	candidate, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.BadRequest("Failed to create user")
	}

	if candidate != nil {
		if candidate.IsEmailVerified {
			return nil, domainerrors.Conflict("Email is already in use")
		}
		return nil, u.handlePendingSignUp(ctx, candidate)
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

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Create(ctx, user); err != nil {
			return domainerrors.NewError("Failed to create user", err)
		}
		return u.issueVerification(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// handlePendingSignUp re-issues the verification token when appropriate.
// Always returns a Conflict; which one depends on the token's state.
func (u *AuthUsecase) handlePendingSignUp(ctx context.Context, candidate *entities.User) error {
	const resent = "Email is already registered but not verified. A new verification email has been sent. Please check your email to verify your account."

	rec, err := u.verifRepo.GetByUserID(ctx, candidate.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.BadRequest("Failed to create user")
	}

	if rec != nil && !rec.Expired(time.Now()) {
		// unexpired token pending: no re-send, avoids mail spam
		return domainerrors.Conflict("Email is already registered but not verified. Please check your email to verify your account.")
	}

	// no record yet, or the token expired: issue a fresh one
	if err := u.uow.Do(ctx, func(ctx context.Context) error {
		return u.issueVerification(ctx, candidate)
	}); err != nil {
		return err
	}
	return domainerrors.Conflict(resent)
}

// issueVerification generates a token, dispatches the verification email and
// persists the record. Dispatch happens first so a send failure leaves no
// dangling token.
func (u *AuthUsecase) issueVerification(ctx context.Context, user *entities.User) error {
	token, err := generateToken()
	if err != nil {
		return domainerrors.InternalError(err)
	}
	if err := u.mail.Send(ctx, &repositories.Mail{
		To:    user.Email,
		Name:  user.Name,
		Token: token,
		Kind:  repositories.MailKindVerification,
	}); err != nil {
		return domainerrors.InternalError(err)
	}
	if err := u.verifRepo.Upsert(ctx, user.ID, token); err != nil {
		return domainerrors.NewError("Failed to create user", err)
	}
	return nil
}

// VerifyEmail redeems a verification token: flips the user's verified flag,
// clears the token and sends a welcome notification. Single-use.
func (u *AuthUsecase) VerifyEmail(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)

	return u.uow.Do(ctx, func(ctx context.Context) error {
		rec, err := u.verifRepo.GetByToken(ctx, token)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.BadRequest("Invalid or expired verification token")
			}
			return domainerrors.NewError("Failed to verify email", err)
		}
		if rec.Expired(time.Now()) {
			// record left as-is, the caller has to request a resend
			return domainerrors.BadRequest("Verification token has expired")
		}

		user, err := u.userRepo.GetByID(ctx, rec.UserID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound("User not found")
			}
			return domainerrors.NewError("Failed to verify email", err)
		}

		verified := true
		if err := u.userRepo.Patch(ctx, user.ID, &entities.UserPatch{IsEmailVerified: &verified}); err != nil {
			return domainerrors.NewError("Failed to verify email", err)
		}
		if err := u.verifRepo.Consume(ctx, token); err != nil {
			return domainerrors.NewError("Failed to verify email", err)
		}

		if err := u.mail.Send(ctx, &repositories.Mail{
			To:   user.Email,
			Name: user.Name,
			Kind: repositories.MailKindWelcome,
		}); err != nil {
			return domainerrors.InternalError(err)
		}
		return nil
	})
}

// ResendVerificationEmail issues a fresh token for an unverified account
func (u *AuthUsecase) ResendVerificationEmail(ctx context.Context, email string) error {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("User with this email does not exist")
		}
		return domainerrors.NewError("Failed to resend verification email", err)
	}
	if user.IsEmailVerified {
		return domainerrors.BadRequest("Email is already verified")
	}

	return u.uow.Do(ctx, func(ctx context.Context) error {
		return u.issueVerification(ctx, user)
	})
}

// SignIn authenticates a user by email and password and stamps the login
// time. The not-found and wrong-password messages are identical so account
// existence does not leak. The unverified-email gate lives at the boundary.
func (u *AuthUsecase) SignIn(ctx context.Context, input *entities.SignInInput) (*entities.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Unauthorized("Invalid email or password")
		}
		return nil, domainerrors.NewError("Failed to sign in", err)
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.Unauthorized("Invalid email or password")
	}

	if err := u.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, domainerrors.NewError("Failed to sign in", err)
	}

	return user, nil
}

// RequestPasswordReset issues a reset token. Unlike sign-up, reset requires
// an already verified email.
func (u *AuthUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("User with this email does not exist")
		}
		return domainerrors.NewError("Failed to reset password", err)
	}
	if !user.IsEmailVerified {
		return domainerrors.BadRequest("Email is not verified")
	}

	return u.uow.Do(ctx, func(ctx context.Context) error {
		token, err := generateToken()
		if err != nil {
			return domainerrors.InternalError(err)
		}
		if err := u.mail.Send(ctx, &repositories.Mail{
			To:    user.Email,
			Name:  user.Name,
			Token: token,
			Kind:  repositories.MailKindReset,
		}); err != nil {
			return domainerrors.InternalError(err)
		}
		if err := u.resetRepo.Upsert(ctx, user.ID, token); err != nil {
			return domainerrors.NewError("Failed to reset password", err)
		}
		return nil
	})
}

// SetNewPassword redeems a reset token and replaces the user's password.
// The new password must differ from the current one.
func (u *AuthUsecase) SetNewPassword(ctx context.Context, token, password string) error {
	token = strings.TrimSpace(token)

	return u.uow.Do(ctx, func(ctx context.Context) error {
		rec, err := u.resetRepo.GetByToken(ctx, token)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.BadRequest("Invalid or expired password reset token")
			}
			return domainerrors.NewError("Failed to update password", err)
		}
		if rec.Expired(time.Now()) {
			return domainerrors.BadRequest("Password reset token has expired. Please request a new password reset.")
		}

		user, err := u.userRepo.GetByID(ctx, rec.UserID)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NotFound("User not found")
			}
			return domainerrors.NewError("Failed to update password", err)
		}
		if !user.IsEmailVerified {
			return domainerrors.BadRequest("Email is not verified")
		}
		if crypto.CheckPassword(password, user.PasswordHash) {
			return domainerrors.BadRequest("New password must be different from the old password")
		}

		passwordHash, err := crypto.HashPassword(password)
		if err != nil {
			return domainerrors.InternalError(err)
		}
		if err := u.userRepo.Patch(ctx, user.ID, &entities.UserPatch{PasswordHash: &passwordHash}); err != nil {
			return domainerrors.NewError("Failed to update password", err)
		}
		if err := u.resetRepo.Consume(ctx, token); err != nil {
			return domainerrors.NewError("Failed to update password", err)
		}
		return nil
	})
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("User not found")
		}
		return nil, domainerrors.NewError("Failed to get user by ID", err)
	}
	return user, nil
}
