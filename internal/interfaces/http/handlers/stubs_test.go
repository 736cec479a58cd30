package handlers_test

import (
	"context"

	"github.com/google/uuid"
	"luckycat.backend/internal/domain/entities"
)

type authServiceStub struct {
	signUpFn        func(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error)
	signInFn        func(ctx context.Context, input *entities.SignInInput) (*entities.User, error)
	verifyEmailFn   func(ctx context.Context, token string) error
	resendFn        func(ctx context.Context, email string) error
	requestResetFn  func(ctx context.Context, email string) error
	setNewPassFn    func(ctx context.Context, token, password string) error
	getUserByIDFn   func(ctx context.Context, id uuid.UUID) (*entities.User, error)
}

func (s authServiceStub) SignUp(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	return s.signUpFn(ctx, input)
}
func (s authServiceStub) SignIn(ctx context.Context, input *entities.SignInInput) (*entities.User, error) {
	return s.signInFn(ctx, input)
}
func (s authServiceStub) VerifyEmail(ctx context.Context, token string) error {
	return s.verifyEmailFn(ctx, token)
}
func (s authServiceStub) ResendVerificationEmail(ctx context.Context, email string) error {
	return s.resendFn(ctx, email)
}
func (s authServiceStub) RequestPasswordReset(ctx context.Context, email string) error {
	return s.requestResetFn(ctx, email)
}
func (s authServiceStub) SetNewPassword(ctx context.Context, token, password string) error {
	return s.setNewPassFn(ctx, token, password)
}
func (s authServiceStub) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.getUserByIDFn(ctx, id)
}

type userServiceStub struct {
	getByIDFn         func(ctx context.Context, id uuid.UUID) (*entities.User, error)
	updateFn          func(ctx context.Context, id uuid.UUID, patch *entities.UserPatch) (*entities.User, error)
	confirmPasswordFn func(ctx context.Context, id uuid.UUID, password string) (bool, error)
	updatePasswordFn  func(ctx context.Context, id uuid.UUID, newPassword string) error
	deleteFn          func(ctx context.Context, id uuid.UUID) error
}

func (s userServiceStub) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s userServiceStub) Update(ctx context.Context, id uuid.UUID, patch *entities.UserPatch) (*entities.User, error) {
	return s.updateFn(ctx, id, patch)
}
func (s userServiceStub) ConfirmPassword(ctx context.Context, id uuid.UUID, password string) (bool, error) {
	return s.confirmPasswordFn(ctx, id, password)
}
func (s userServiceStub) UpdatePassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	return s.updatePasswordFn(ctx, id, newPassword)
}
func (s userServiceStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

type menuServiceStub struct {
	getMenuFn func(ctx context.Context, language entities.Language) ([]*entities.MenuCategory, error)
}

func (s menuServiceStub) GetMenuByLanguage(ctx context.Context, language entities.Language) ([]*entities.MenuCategory, error) {
	return s.getMenuFn(ctx, language)
}

type pingerStub struct {
	err error
}

func (p pingerStub) Ping(context.Context) error {
	return p.err
}
