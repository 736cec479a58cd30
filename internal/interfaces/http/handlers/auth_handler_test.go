package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"luckycat.backend/internal/domain/entities"
	domainerrors "luckycat.backend/internal/domain/errors"
	"luckycat.backend/internal/interfaces/http/handlers"
	"luckycat.backend/internal/interfaces/http/middleware"
	"luckycat.backend/pkg/jwt"
)

func newJWTService() *jwt.Service {
	return jwt.NewService("test-secret", time.Hour)
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authRouter(stub authServiceStub) (*gin.Engine, *jwt.Service) {
	gin.SetMode(gin.TestMode)
	svc := newJWTService()
	h := handlers.NewAuthHandler(stub, svc, time.Hour)
	r := gin.New()
	r.POST("/auth/sign-up", h.SignUp)
	r.POST("/auth/sign-in", h.SignIn)
	r.POST("/auth/confirm-email", h.VerifyEmail)
	r.POST("/auth/resend-verification-email", h.ResendVerificationEmail)
	r.POST("/auth/request-password-reset", h.RequestPasswordReset)
	r.POST("/auth/set-new-password", h.SetNewPassword)
	r.GET("/auth/me", middleware.AuthMiddleware(svc), h.Me)
	return r, svc
}

func TestAuthHandler_SignUp(t *testing.T) {
	user := &entities.User{ID: uuid.New(), Name: "New", Email: "new@luckycat.pp.ua", Role: entities.UserRoleUser}
	r, _ := authRouter(authServiceStub{
		signUpFn: func(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
			assert.Equal(t, "new@luckycat.pp.ua", input.Email)
			return user, nil
		},
	})

	w := postJSON(t, r, "/auth/sign-up", gin.H{
		"name":     "New",
		"email":    "new@luckycat.pp.ua",
		"password": "Password123!",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "check your email")
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestAuthHandler_SignUp_ValidationErrors(t *testing.T) {
	r, _ := authRouter(authServiceStub{
		signUpFn: func(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
			t.Fatal("service must not be called on invalid input")
			return nil, nil
		},
	})

	tests := []struct {
		name string
		body gin.H
	}{
		{"missing email", gin.H{"name": "New", "password": "Password123!"}},
		{"bad email", gin.H{"name": "New", "email": "not-an-email", "password": "Password123!"}},
		{"short password", gin.H{"name": "New", "email": "new@luckycat.pp.ua", "password": "123"}},
		{"short name", gin.H{"name": "N", "email": "new@luckycat.pp.ua", "password": "Password123!"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/auth/sign-up", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthHandler_SignUp_Conflict(t *testing.T) {
	r, _ := authRouter(authServiceStub{
		signUpFn: func(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
			return nil, domainerrors.Conflict("Email is already in use")
		},
	})

	w := postJSON(t, r, "/auth/sign-up", gin.H{
		"name":     "Dup",
		"email":    "taken@luckycat.pp.ua",
		"password": "Password123!",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Email is already in use")
}

func TestAuthHandler_SignIn_SetsSessionCookie(t *testing.T) {
	user := &entities.User{ID: uuid.New(), Email: "cat@luckycat.pp.ua", IsEmailVerified: true}
	r, svc := authRouter(authServiceStub{
		signInFn: func(ctx context.Context, input *entities.SignInInput) (*entities.User, error) {
			return user, nil
		},
	})

	w := postJSON(t, r, "/auth/sign-in", gin.H{"email": "cat@luckycat.pp.ua", "password": "Password123!"})
	require.Equal(t, http.StatusOK, w.Code)

	var sessionCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "token" {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	assert.True(t, sessionCookie.HttpOnly)

	claims, err := svc.Validate(sessionCookie.Value)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestAuthHandler_SignIn_UnverifiedIsForbidden(t *testing.T) {
	user := &entities.User{ID: uuid.New(), Email: "new@luckycat.pp.ua", IsEmailVerified: false}
	r, _ := authRouter(authServiceStub{
		signInFn: func(ctx context.Context, input *entities.SignInInput) (*entities.User, error) {
			return user, nil
		},
	})

	w := postJSON(t, r, "/auth/sign-in", gin.H{"email": "new@luckycat.pp.ua", "password": "Password123!"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestAuthHandler_SignIn_BadCredentials(t *testing.T) {
	r, _ := authRouter(authServiceStub{
		signInFn: func(ctx context.Context, input *entities.SignInInput) (*entities.User, error) {
			return nil, domainerrors.Unauthorized("Invalid email or password")
		},
	})

	w := postJSON(t, r, "/auth/sign-in", gin.H{"email": "cat@luckycat.pp.ua", "password": "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestAuthHandler_VerifyEmail(t *testing.T) {
	var got string
	r, _ := authRouter(authServiceStub{
		verifyEmailFn: func(ctx context.Context, token string) error {
			got = token
			return nil
		},
	})

	w := postJSON(t, r, "/auth/confirm-email", gin.H{"token": "abc123"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc123", got)
}

func TestAuthHandler_VerifyEmail_InvalidToken(t *testing.T) {
	r, _ := authRouter(authServiceStub{
		verifyEmailFn: func(ctx context.Context, token string) error {
			return domainerrors.BadRequest("Invalid or expired verification token")
		},
	})

	w := postJSON(t, r, "/auth/confirm-email", gin.H{"token": "ghost"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_VerifyEmail_MissingToken(t *testing.T) {
	r, _ := authRouter(authServiceStub{
		verifyEmailFn: func(ctx context.Context, token string) error {
			t.Fatal("service must not be called without a token")
			return nil
		},
	})

	w := postJSON(t, r, "/auth/confirm-email", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_ResendVerificationEmail(t *testing.T) {
	r, _ := authRouter(authServiceStub{
		resendFn: func(ctx context.Context, email string) error {
			assert.Equal(t, "cat@luckycat.pp.ua", email)
			return nil
		},
	})

	w := postJSON(t, r, "/auth/resend-verification-email", gin.H{"email": "cat@luckycat.pp.ua"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_RequestPasswordReset_UnknownEmail(t *testing.T) {
	r, _ := authRouter(authServiceStub{
		requestResetFn: func(ctx context.Context, email string) error {
			return domainerrors.NotFound("User with this email does not exist")
		},
	})

	w := postJSON(t, r, "/auth/request-password-reset", gin.H{"email": "ghost@luckycat.pp.ua"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthHandler_SetNewPassword(t *testing.T) {
	r, _ := authRouter(authServiceStub{
		setNewPassFn: func(ctx context.Context, token, password string) error {
			assert.Equal(t, "reset-token", token)
			assert.Equal(t, "NewPassword1!", password)
			return nil
		},
	})

	w := postJSON(t, r, "/auth/set-new-password", gin.H{"token": "reset-token", "password": "NewPassword1!"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthHandler_SetNewPassword_ShortPassword(t *testing.T) {
	r, _ := authRouter(authServiceStub{
		setNewPassFn: func(ctx context.Context, token, password string) error {
			t.Fatal("service must not be called on invalid input")
			return nil
		},
	})

	w := postJSON(t, r, "/auth/set-new-password", gin.H{"token": "reset-token", "password": "123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	user := &entities.User{ID: uuid.New(), Name: "Cat", Email: "cat@luckycat.pp.ua", IsEmailVerified: true}
	r, svc := authRouter(authServiceStub{
		getUserByIDFn: func(ctx context.Context, id uuid.UUID) (*entities.User, error) {
			assert.Equal(t, user.ID, id)
			return user, nil
		},
	})

	token, err := svc.Generate(user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cat@luckycat.pp.ua")
}

func TestAuthHandler_Me_UnverifiedIsForbidden(t *testing.T) {
	user := &entities.User{ID: uuid.New(), IsEmailVerified: false}
	r, svc := authRouter(authServiceStub{
		getUserByIDFn: func(ctx context.Context, id uuid.UUID) (*entities.User, error) {
			return user, nil
		},
	})

	token, err := svc.Generate(user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthHandler_Me_NoToken(t *testing.T) {
	r, _ := authRouter(authServiceStub{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
