package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"luckycat.backend/internal/domain/entities"
	"luckycat.backend/internal/domain/repositories"
)

// stubUnitOfWork runs the function directly; usecase tests exercise the
// transactional behavior at the repository layer instead.
type stubUnitOfWork struct{}

func (stubUnitOfWork) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Patch(ctx context.Context, id uuid.UUID, patch *entities.UserPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock EmailVerificationRepository
type MockEmailVerificationRepository struct {
	mock.Mock
}

func (m *MockEmailVerificationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.EmailVerification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EmailVerification), args.Error(1)
}

func (m *MockEmailVerificationRepository) GetByToken(ctx context.Context, token string) (*entities.EmailVerification, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EmailVerification), args.Error(1)
}

func (m *MockEmailVerificationRepository) Upsert(ctx context.Context, userID uuid.UUID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockEmailVerificationRepository) Consume(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// Mock PasswordResetRepository
type MockPasswordResetRepository struct {
	mock.Mock
}

func (m *MockPasswordResetRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.PasswordReset, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PasswordReset), args.Error(1)
}

func (m *MockPasswordResetRepository) GetByToken(ctx context.Context, token string) (*entities.PasswordReset, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PasswordReset), args.Error(1)
}

func (m *MockPasswordResetRepository) Upsert(ctx context.Context, userID uuid.UUID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockPasswordResetRepository) Consume(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// Mock MailSender
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) Send(ctx context.Context, mail *repositories.Mail) error {
	args := m.Called(ctx, mail)
	return args.Error(0)
}

// Mock MenuRepository
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) GetByLanguage(ctx context.Context, language entities.Language) ([]*entities.MenuCategory, error) {
	args := m.Called(ctx, language)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.MenuCategory), args.Error(1)
}
